package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/23skdu/fwdad/internal/grad"
	"github.com/23skdu/fwdad/internal/objective"
	"github.com/23skdu/fwdad/internal/records"
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/fxamacker/cbor/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/semaphore"
)

var (
	pointsProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fwdad_points_processed_total",
		Help: "The total number of points differentiated by the server",
	})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fwdad_request_duration_seconds",
		Help:    "Time spent processing gradient requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})

	rejectedRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fwdad_requests_rejected_total",
		Help: "Requests rejected by admission control",
	})
)

// GradientRequest is the CBOR body of POST /gradient.
type GradientRequest struct {
	Objective string      `cbor:"objective"`
	Points    [][]float64 `cbor:"points"`
}

// GradientResponse is the CBOR reply of POST /gradient.
type GradientResponse struct {
	Results []grad.Result `cbor:"results"`
}

type FlightClientInterface interface {
	DoPut(ctx context.Context, datasetName string, record arrow.RecordBatch) error
	Close() error
}

type Server struct {
	registry     *objective.Registry
	evaluator    *grad.Evaluator
	flightClient FlightClientInterface
	datasetName  string
	alloc        memory.Allocator
	sem          *semaphore.Weighted
	capacity     int64
	admitWait    time.Duration
}

func NewServer(reg *objective.Registry, ev *grad.Evaluator, fc FlightClientInterface, dataset string, maxConcurrent int) *Server {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &Server{
		registry:     reg,
		evaluator:    ev,
		flightClient: fc,
		datasetName:  dataset,
		alloc:        memory.NewGoAllocator(),
		sem:          semaphore.NewWeighted(int64(maxConcurrent)),
		capacity:     int64(maxConcurrent),
		admitWait:    5 * time.Second,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/gradient", s.handleGradient)
	mux.HandleFunc("/gradient/arrow", s.handleGradientArrow)
	mux.HandleFunc("/objectives", s.handleObjectives)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

func startServer(addr string, srv *Server) {
	log.Info().Str("addr", addr).Msg("Starting fwdad HTTP server")
	if srv.flightClient != nil {
		log.Info().Str("dataset", srv.datasetName).Msg("Forwarding results over Flight")
	}
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}

var tracer = otel.Tracer("fwdad-server")

// admit reserves capacity for n points. Batches larger than the server's
// capacity take all of it.
func (s *Server) admit(ctx context.Context, n int) (func(), error) {
	weight := min(int64(n), s.capacity)
	actx, cancel := context.WithTimeout(ctx, s.admitWait)
	defer cancel()
	if err := s.sem.Acquire(actx, weight); err != nil {
		rejectedRequests.Inc()
		return nil, err
	}
	return func() { s.sem.Release(weight) }, nil
}

// evaluate runs one batch under admission control and forwards the
// results when a Flight client is configured.
func (s *Server) evaluate(ctx context.Context, o objective.Objective, points [][]float64) ([]grad.Result, int, error) {
	release, err := s.admit(ctx, len(points))
	if err != nil {
		return nil, http.StatusServiceUnavailable, fmt.Errorf("server busy: %w", err)
	}
	defer release()

	results, err := s.evaluator.Evaluate(ctx, o, points)
	if err != nil {
		if errors.Is(err, objective.ErrDimension) {
			return nil, http.StatusBadRequest, err
		}
		return nil, http.StatusInternalServerError, err
	}
	pointsProcessed.Add(float64(len(points)))

	if s.flightClient != nil {
		if err := s.forward(ctx, results); err != nil {
			log.Error().Err(err).Str("dataset", s.datasetName).Msg("Error forwarding results")
		}
	}
	return results, http.StatusOK, nil
}

func (s *Server) forward(ctx context.Context, results []grad.Result) error {
	rec, err := records.NewBuilder(s.alloc).Results(results)
	if err != nil || rec == nil {
		return err
	}
	defer rec.Release()
	return s.flightClient.DoPut(ctx, s.datasetName, rec)
}

func (s *Server) lookup(w http.ResponseWriter, name string) (objective.Objective, bool) {
	o, err := s.registry.Lookup(name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return objective.Objective{}, false
	}
	return o, true
}

func (s *Server) handleGradient(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "handleGradient")
	defer span.End()

	start := time.Now()
	defer func() {
		requestDuration.WithLabelValues("cbor").Observe(time.Since(start).Seconds())
	}()

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req GradientRequest
	if err := cbor.NewDecoder(r.Body).Decode(&req); err != nil {
		span.RecordError(err)
		http.Error(w, fmt.Sprintf("Bad Request (CBOR decode): %v", err), http.StatusBadRequest)
		return
	}
	o, ok := s.lookup(w, req.Objective)
	if !ok {
		return
	}
	span.SetAttributes(
		attribute.String("objective", o.Name),
		attribute.Int("point_count", len(req.Points)),
	)

	resp := GradientResponse{Results: []grad.Result{}}
	if len(req.Points) > 0 {
		results, code, err := s.evaluate(ctx, o, req.Points)
		if err != nil {
			span.RecordError(err)
			http.Error(w, err.Error(), code)
			return
		}
		resp.Results = results
	}

	body, err := cbor.Marshal(resp)
	if err != nil {
		span.RecordError(err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/cbor")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// handleGradientArrow reads an Arrow IPC stream of point batches and
// answers with a stream of result batches, one per input batch.
func (s *Server) handleGradientArrow(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "handleGradientArrow")
	defer span.End()

	start := time.Now()
	defer func() {
		requestDuration.WithLabelValues("arrow").Observe(time.Since(start).Seconds())
	}()

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	o, ok := s.lookup(w, r.URL.Query().Get("objective"))
	if !ok {
		return
	}

	reader, err := ipc.NewReader(r.Body, ipc.WithAllocator(s.alloc))
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to create IPC reader: %v", err), http.StatusBadRequest)
		return
	}
	defer reader.Release()

	dim, err := records.Dim(reader.Schema())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := o.CheckDim(dim); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var batches [][]grad.Result
	total := 0
	for reader.Next() {
		points, err := records.DecodePoints(reader.Record())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if len(points) == 0 {
			continue
		}
		results, code, err := s.evaluate(ctx, o, points)
		if err != nil {
			span.RecordError(err)
			http.Error(w, err.Error(), code)
			return
		}
		batches = append(batches, results)
		total += len(results)
	}
	if err := reader.Err(); err != nil {
		log.Error().Err(err).Msg("Error reading Arrow stream")
		http.Error(w, "Stream error", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int("point_count", total))

	w.Header().Set("Content-Type", "application/vnd.apache.arrow.stream")
	writer := ipc.NewWriter(w, ipc.WithSchema(records.ResultSchema(dim)), ipc.WithAllocator(s.alloc))
	b := records.NewBuilder(s.alloc)
	for _, results := range batches {
		rec, err := b.Results(results)
		if err != nil {
			log.Error().Err(err).Msg("Failed to build result batch")
			break
		}
		err = writer.Write(rec)
		rec.Release()
		if err != nil {
			log.Error().Err(err).Msg("Failed to write result batch")
			break
		}
	}
	if err := writer.Close(); err != nil {
		log.Warn().Err(err).Msg("Failed to close Arrow stream")
	}
}

func (s *Server) handleObjectives(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	body, err := cbor.Marshal(s.registry.Names())
	if err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/cbor")
	_, _ = w.Write(body)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
