// Package client turns a table of named endpoint templates into callable
// HTTP requests.
//
// A Client owns an endpoint.Registry, the production and sandbox base URLs,
// the header defaults and an optional auth.Authenticator. Endpoint(name)
// looks a name up and returns a Func; calling it fills the path template,
// resolves the URL for the configured environment, attaches headers, query,
// JSON body and credentials, and sends exactly one request through the
// transport. The *http.Response comes back untouched whatever its status.
//
//	c, err := client.New(client.Config{
//	    BaseURL: "https://api.example.com/",
//	    Endpoints: endpoint.Registry{
//	        "get_user": {Method: "GET", Path: "/users/{}"},
//	    },
//	}, client.WithAuth(auth.Bearer(token)))
//
//	resp, err := c.Invoke(ctx, "get_user", client.PathArgs(42), client.Param("expand", "teams"))
package client
