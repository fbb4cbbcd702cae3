// Package email provides a provider-agnostic interface for delivering newsletter
// documents, with a Postmark implementation for production and a file-based
// sender for local development.
//
// # Architecture
//
// The package is built around the EmailSender interface:
//   - NewPostmarkClient delivers through Postmark with open and link tracking
//   - NewDevSender writes each message as an .html file plus a .json metadata file
//
// All implementations validate SendEmailParams before sending.
//
// # Usage
//
//	client, err := email.NewPostmarkClient(email.Config{
//	    PostmarkServerToken:  "server-token",
//	    PostmarkAccountToken: "account-token",
//	    SenderEmail:          "stories@example.org",
//	    SupportEmail:         "support@example.org",
//	})
//	if err != nil {
//	    return err
//	}
//
//	err = client.SendEmail(ctx, email.SendEmailParams{
//	    SendTo:   "donor@example.com",
//	    Subject:  "Progress update: Clean Water Well",
//	    BodyHTML: html,
//	    Tag:      "story-progress-update",
//	    Headers:  map[string]string{"List-Unsubscribe": "<https://example.org/u/123>"},
//	})
//
// Newsletter documents are produced by the newsletter package; the templates
// subpackage renders any templ component to a string.
//
// # Error Handling
//
//   - ErrInvalidConfig: configuration validation failed
//   - ErrInvalidParams: message parameters validation failed
//   - ErrFailedToSendEmail: delivery failed
//
// All errors can be checked with errors.Is.
package email
