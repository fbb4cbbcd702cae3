// Package preview exposes the newsletter catalogues over HTTP so designers can
// browse themes and see every template rendered with sample data.
//
//	h := preview.NewHandler(preview.WithLogger(log), preview.WithData(overrides))
//	srv := httpserver.NewFromConfig(cfg)
//	err := srv.Run(ctx, h.Router())
//
// Unknown template or theme ids answer 404 with a JSON error envelope.
package preview
