// Package httpserver runs an http.Handler with sane timeouts and graceful
// shutdown driven by a context.
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    return err
//	}
//
// Run returns nil after a clean shutdown. Listener failures wrap ErrStart and
// drain failures wrap ErrShutdown.
package httpserver
