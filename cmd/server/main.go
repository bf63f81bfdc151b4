// Command server exposes the ishi volition classifier as a JSON REST API.
//
// Endpoints:
//
//	POST /api/classify           body: {"text":"...", "nominative":"..."}
//	POST /api/classify/sentence  body: a parsed sentence (ishi.Sentence JSON)
//	GET  /api/rules              loaded rule-set sizes
//	GET  /health
package main

import (
	"encoding/json"
	"flag"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/jp-nlp/ishi"
	"github.com/jp-nlp/ishi/knp"
)

// ---- JSON request/response types -----------------------------------------

type classifyRequest struct {
	Text string `json:"text"`
	// Nominative optionally supplies an externally resolved subject surface.
	Nominative string `json:"nominative,omitempty"`
}

type classifyResponse struct {
	Volition bool   `json:"volition"`
	Stage    string `json:"stage"`
	Trigger  string `json:"trigger,omitempty"`
}

type sentenceRequest struct {
	Sentence   ishi.Sentence `json:"sentence"`
	Nominative string        `json:"nominative,omitempty"`
}

type rulesResponse struct {
	Categories map[string]int `json:"categories"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers --------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string, logger *zap.Logger) {
	writeJSON(w, status, errorResponse{Error: msg}, logger)
}

func nominativeOrNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// ---- handlers ---------------------------------------------------------------

func handleClassify(clf *ishi.Classifier, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req classifyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
			writeError(w, http.StatusBadRequest,
				"body must be JSON with a non-empty 'text' field", logger)
			return
		}
		verdict, decision, err := clf.ClassifyTrace(r.Context(), req.Text,
			nominativeOrNil(req.Nominative))
		if err != nil {
			logger.Warn("classification failed",
				zap.String("text", req.Text), zap.Error(err))
			writeError(w, http.StatusBadGateway, err.Error(), logger)
			return
		}
		logger.Info("classified",
			zap.String("text", req.Text),
			zap.Bool("volition", verdict),
			zap.String("stage", decision.Stage))
		writeJSON(w, http.StatusOK, classifyResponse{
			Volition: verdict,
			Stage:    decision.Stage,
			Trigger:  decision.Trigger,
		}, logger)
	}
}

func handleClassifySentence(clf *ishi.Classifier, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sentenceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "body must be a parsed sentence", logger)
			return
		}
		verdict, decision, err := clf.ClassifyTrace(r.Context(), &req.Sentence,
			nominativeOrNil(req.Nominative))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error(), logger)
			return
		}
		writeJSON(w, http.StatusOK, classifyResponse{
			Volition: verdict,
			Stage:    decision.Stage,
			Trigger:  decision.Trigger,
		}, logger)
	}
}

func handleRules(clf *ishi.Classifier, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sizes := make(map[string]int, len(ishi.Categories))
		for _, cat := range ishi.Categories {
			sizes[string(cat)] = clf.Rules().Len(cat)
		}
		writeJSON(w, http.StatusOK, rulesResponse{Categories: sizes}, logger)
	}
}

func handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}
}

// ---- main -------------------------------------------------------------------

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	addr := flag.String("addr", "", "listen address (overrides config)")
	dataDir := flag.String("data", "", "path to rule data directory (overrides config)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	zapCfg := zap.NewProductionConfig()
	if *debug {
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := zapCfg.Build()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}

	parser := knp.NewClient(
		knp.WithJumanCommand(cfg.KNP.Juman...),
		knp.WithKNPCommand(cfg.KNP.KNP...),
		knp.WithLogger(logger),
	)
	clf, err := ishi.New(cfg.DataDir,
		ishi.WithParser(parser),
		ishi.WithLogger(logger),
	)
	if err != nil {
		logger.Fatal("load rules", zap.String("data_dir", cfg.DataDir), zap.Error(err))
	}
	logger.Info("rules loaded", zap.String("data_dir", cfg.DataDir))

	r := mux.NewRouter()
	r.HandleFunc("/api/classify", handleClassify(clf, logger)).Methods(http.MethodPost)
	r.HandleFunc("/api/classify/sentence", handleClassifySentence(clf, logger)).Methods(http.MethodPost)
	r.HandleFunc("/api/rules", handleRules(clf, logger)).Methods(http.MethodGet)
	r.HandleFunc("/health", handleHealth()).Methods(http.MethodGet)

	handler := cors.Default().Handler(r)
	logger.Info("listening", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
