// Package httpserver runs an http.Handler with graceful shutdown and provides
// the middleware and health endpoint shared by formguard services.
//
// A Server is built from functional options or from an env-tagged Config:
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg, config.WithPrefix("FORMGUARD_"))
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Run blocks until ctx is cancelled, SIGINT or SIGTERM is received, or the
// listener fails. Listen errors wrap ErrStart and shutdown errors wrap
// ErrShutdown.
package httpserver
