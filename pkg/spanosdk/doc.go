/*
Package spanosdk holds the wire types of the Spano fitness service and a small
client for driving it over HTTP.

The JSON endpoints (/webhook/ and /ai/ask) report failures as

	{"error": "<code>", "error_description": "<text>"}

which the server writes with APIError.WriteError and the client turns back
into an *APIError.

The page endpoints speak HTML forms and a session cookie. Client keeps the
cookie in a jar, so a typical session looks like:

	c := spanosdk.NewClient("http://localhost:8080")
	if err := c.Signup(ctx, spanosdk.SignupForm{Name: "ana", Password: "pw", Age: 31, Weight: 60, Height: 165, Gender: "female", Goal: "run"}); err != nil {
		return err
	}
	next, err := c.Login(ctx, "ana", "pw") // "/dashboard"
	...
	resp, err := c.Ask(ctx, "what should I eat tonight?")

Redirects are not followed automatically; methods report where the server
pointed instead.
*/
package spanosdk
