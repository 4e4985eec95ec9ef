/*
Package seosdk provides request/response types and a Go client for the
seodesk API.

# Overview

The server uses the types in this package as its wire format, so they are
the single source of truth for the JSON shapes documented in the OpenAPI
spec. The Client wraps every route:

	client := seosdk.NewClient("https://seodesk.example.com").WithToken(accessToken)

	site, err := client.SubmitWebsite(ctx, "example.com")
	inv, err := client.CreateInvite(ctx, site.ID, seosdk.CreateInviteRequest{
		Email: "teammate@example.com",
	})

Public invite routes work without a token:

	anon := seosdk.NewClient("https://seodesk.example.com")
	preview, err := anon.GetInvite(ctx, inv.Token)

Accepting needs no token either; the invitee is resolved by the invite's
e-mail, so they must have signed in at least once.

# Errors

Non-2xx responses are returned as *APIError carrying the status code, the
machine readable code and the user facing message:

	_, err := anon.AcceptInvite(ctx, token)
	var apiErr *seosdk.APIError
	if errors.As(err, &apiErr) {
		fmt.Println(apiErr.StatusCode, apiErr.Description) // 400 Invite has already been accepted
	}

IsNotFound, IsConflict and IsForbidden cover the common checks.
*/
package seosdk
