package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/anilink-cli/anilink/key"
	"github.com/anilink-cli/anilink/log"
	"github.com/spf13/viper"
)

// Run serves the extraction front door until the listener fails.
// Extraction runs can be long, so the write timeout leaves headroom over the
// global run budget.
func Run(ex Extractor) error {
	addr := fmt.Sprintf(":%d", viper.GetInt(key.ServerPort))

	mux := http.NewServeMux()
	mux.Handle("/", NewHandler(ex))

	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: viper.GetDuration(key.ExtractorRunTimeout) + time.Minute,
	}

	log.Infof("listening on %s", addr)
	return srv.ListenAndServe()
}
