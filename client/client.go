package client

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"skiff/lib/schema"
)

// Client talks to the engine's schema endpoints over http. It is cheap to
// copy and safe for concurrent use.
type Client struct {
	httpclient *http.Client
	url        *url.URL
}

func NewClient(hostport string, httpclient *http.Client) (*Client, error) {
	url, err := url.Parse(hostport)
	if err != nil {
		return nil, fmt.Errorf("failed to parse hostport [%s]: %v", hostport, err)
	}
	return &Client{
		url:        url,
		httpclient: httpclient,
	}, nil
}

func (c Client) schemaURL(name string) string {
	c.url.Path = "/schema/" + name
	return c.url.String()
}

func (c Client) get(url string) ([]byte, error) {
	response, err := c.httpclient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("server error: %v", err)
	}
	defer response.Body.Close()
	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read server response: %v", err)
	}
	// handle http error given by the server
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, fmt.Errorf("%s: %s", http.StatusText(response.StatusCode), string(body))
	}
	return body, nil
}

// Frame is a reference to a named tabular object living in the engine. It
// implements schema.Handle, so the schema layer can ask it for its own schema
// json without knowing about http.
type Frame struct {
	client *Client
	name   string
}

var _ schema.Handle = Frame{}

func (c *Client) Frame(name string) Frame {
	return Frame{client: c, name: name}
}

func (f Frame) Name() string {
	return f.name
}

func (f Frame) JSON() (string, error) {
	body, err := f.client.get(f.client.schemaURL(f.name))
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// Schema fetches and parses the schema of the named engine object.
func (c *Client) Schema(name string) (schema.StructType, error) {
	return schema.StructTypeFromHandle(c.Frame(name))
}
