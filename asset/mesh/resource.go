package mesh

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
)

// The resource type wraps a streamable local file or remote mesh source.
type resource struct {
	io.ReadCloser
	url *url.URL
}

// Returns the path to this resource.
func (r *resource) Path() string {
	return r.url.String()
}

// Create a new resource data stream. This function can handle http/https
// URLs by delegating to the net/http package. The caller must make sure to
// close the returned resource to prevent leaks.
func newResource(pathToResource string) (*resource, error) {
	url, err := url.Parse(strings.Replace(pathToResource, `\`, `/`, -1))
	if err != nil {
		return nil, err
	}

	res := &resource{url: url}

	if res.url.Scheme == "http" || res.url.Scheme == "https" {
		resp, err := http.Get(res.url.String())
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("mesh: could not fetch '%s'; got status %d", res.url.String(), resp.StatusCode)
		}

		res.ReadCloser = resp.Body
		return res, nil
	}

	f, err := os.Open(res.url.String())
	if err != nil {
		return nil, err
	}

	res.ReadCloser = f
	return res, nil
}
