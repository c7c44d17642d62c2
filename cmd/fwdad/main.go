// Command fwdad minimizes and differentiates objectives with dual numbers.
//
// Without -listen, -flight or -server it minimizes -objective from -start
// and logs the result. With -listen and/or -flight it serves gradient
// evaluation over HTTP and Arrow Flight. With only -server it sends the
// -start points to a remote fwdad Flight server.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"strconv"
	"strings"
	"time"

	"github.com/23skdu/fwdad/internal/cache"
	"github.com/23skdu/fwdad/internal/client"
	"github.com/23skdu/fwdad/internal/grad"
	"github.com/23skdu/fwdad/internal/objective"
	"github.com/23skdu/fwdad/internal/optim"
	"github.com/23skdu/fwdad/internal/records"
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

var (
	objectiveName = flag.String("objective", "rosenbrock", "Objective to minimize or differentiate")
	startPoint    = flag.String("start", "", "Start point, comma separated (e.g. 0,0); in client mode ';' separates points")
	methodName    = flag.String("method", "descent", "Minimization method (descent, bfgs, lbfgs, cg)")
	alpha         = flag.Float64("alpha", 1e-3, "Gradient descent step size")
	maxIter       = flag.Int("iters", 10000, "Maximum number of iterations")
	tolerance     = flag.Float64("tol", 0, "Stop once the gradient infinity norm is at most this (0 disables for descent)")
	logEvery      = flag.Int("log-every", 1000, "Log progress every N iterations (0 disables)")
	checkGrad     = flag.Bool("check", false, "Cross-check the gradient at the start point against finite differences")
	checkTol      = flag.Float64("check-tol", 1e-6, "Relative tolerance for -check")
	outFile       = flag.String("out", "", "Write results as an Arrow IPC stream to this file ('-' for stdout)")
	serverAddr    = flag.String("server", "", "Remote fwdad Flight server address (e.g., localhost:9090)")
	datasetName   = flag.String("dataset", "fwdad_results", "Dataset results are forwarded to when serving with -server")
	listenAddr    = flag.String("listen", "", "Address to listen on for HTTP Server (e.g. :8080)")
	flightAddr    = flag.String("flight", "", "Address to listen on for Flight Server (e.g. :9090)")
	maxConcurrent = flag.Int("max-concurrent", 16384, "Maximum number of points evaluated concurrently by the server")
	workers       = flag.Int("workers", 0, "Evaluation workers per batch (0 uses GOMAXPROCS)")
	cacheSize     = flag.Int("cache", 0, "Cache up to N evaluated points (0 disables)")
	enableOTel    = flag.Bool("otel", false, "Enable OpenTelemetry tracing (stdout)")
	cpuProfile    = flag.String("cpuprofile", "", "Write cpu profile to file")
	logLevel      = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Caller().Logger()

	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal().Err(err).Str("level", *logLevel).Msg("Invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	if *enableOTel {
		shutdown, err := initTracer()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize tracer")
		}
		defer shutdown(context.Background())
	}

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create CPU profile file")
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal().Err(err).Msg("Could not start CPU profile")
		}
		defer pprof.StopCPUProfile()
	}

	reg := objective.Default()

	switch {
	case *listenAddr != "" || *flightAddr != "":
		serve(reg)
	case *serverAddr != "":
		if err := runClient(reg); err != nil {
			log.Fatal().Err(err).Msg("Remote evaluation failed")
		}
	default:
		if err := runLocal(reg); err != nil {
			log.Fatal().Err(err).Msg("Minimization failed")
		}
	}
}

func newEvaluator() *grad.Evaluator {
	opts := []grad.Option{grad.WithWorkers(*workers)}
	if *cacheSize > 0 {
		opts = append(opts, grad.WithCache(cache.NewShardedCache(16, *cacheSize)))
		log.Info().Int("entries", *cacheSize).Msg("Result cache enabled")
	}
	return grad.NewEvaluator(opts...)
}

func serve(reg *objective.Registry) {
	ev := newEvaluator()

	if *listenAddr != "" {
		var fc FlightClientInterface
		if *serverAddr != "" {
			c, err := client.NewFlightClient(*serverAddr)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to create flight client")
			}
			log.Info().Str("addr", *serverAddr).Msg("Connected to Flight Server")
			fc = c
		}
		srv := NewServer(reg, ev, fc, *datasetName, *maxConcurrent)
		log.Info().Int("max_concurrent", *maxConcurrent).Int("workers", ev.Workers()).Msg("Admission control")

		if *flightAddr == "" {
			startServer(*listenAddr, srv)
			return
		}
		go startServer(*listenAddr, srv)
	}
	StartFlightServer(*flightAddr, reg, ev)
}

func runClient(reg *objective.Registry) error {
	o, err := reg.Lookup(*objectiveName)
	if err != nil {
		return err
	}
	points, err := parsePoints(*startPoint)
	if err != nil {
		return err
	}
	if len(points) == 0 {
		points = [][]float64{defaultStart(o)}
	}

	fc, err := client.NewFlightClient(*serverAddr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", *serverAddr, err)
	}
	defer func() {
		if err := fc.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close flight client")
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	start := time.Now()
	results, err := fc.DoExchange(ctx, o.Name, points)
	if err != nil {
		return err
	}
	for i, r := range results {
		log.Info().
			Floats64("point", points[i]).
			Float64("value", r.Value).
			Floats64("gradient", r.Gradient).
			Msg("Evaluated point")
	}
	log.Info().Int("count", len(results)).Dur("elapsed", time.Since(start)).Msg("Remote evaluation complete")
	return writeResults(results)
}

func runLocal(reg *objective.Registry) error {
	o, err := reg.Lookup(*objectiveName)
	if err != nil {
		return err
	}
	m, err := optim.ParseMethod(*methodName)
	if err != nil {
		return err
	}
	start, err := parsePoint(*startPoint)
	if err != nil {
		return err
	}
	if len(start) == 0 {
		start = defaultStart(o)
	}
	if err := o.CheckDim(len(start)); err != nil {
		return err
	}

	if *checkGrad {
		res, err := grad.Check(o.Eval, start, *checkTol)
		if err != nil {
			return err
		}
		log.Info().
			Floats64("ad", res.AD).
			Floats64("fd", res.FD).
			Float64("max_err", res.MaxErr).
			Msg("Gradient check passed")
	}

	cfg := optim.Config{Alpha: *alpha, MaxIter: *maxIter, Tol: *tolerance, LogEvery: *logEvery}
	t0 := time.Now()
	res, err := optim.Minimize(context.Background(), o, start, m, cfg)
	if err != nil {
		return err
	}
	log.Info().
		Str("objective", o.Name).
		Str("method", string(m)).
		Floats64("x", res.X).
		Float64("value", res.Value).
		Floats64("gradient", res.Gradient).
		Int("iterations", res.Iterations).
		Str("status", res.Status).
		Dur("elapsed", time.Since(t0)).
		Msg("Minimization complete")

	return writeResults([]grad.Result{{Value: res.Value, Gradient: res.Gradient}})
}

func writeResults(results []grad.Result) error {
	if *outFile == "" || len(results) == 0 {
		return nil
	}
	rec, err := records.NewBuilder(memory.NewGoAllocator()).Results(results)
	if err != nil {
		return err
	}
	defer rec.Release()

	if *outFile == "-" {
		return writeArrowStream(os.Stdout, rec)
	}
	f, err := os.Create(*outFile)
	if err != nil {
		return err
	}
	if err := writeArrowStream(f, rec); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func writeArrowStream(w io.Writer, rec arrow.RecordBatch) error {
	writer := ipc.NewWriter(w, ipc.WithSchema(rec.Schema()))
	if err := writer.Write(rec); err != nil {
		_ = writer.Close()
		return err
	}
	return writer.Close()
}

// defaultStart is the origin in the objective's dimension, or in two
// dimensions for objectives of any dimension.
func defaultStart(o objective.Objective) []float64 {
	n := o.Dim
	if n == 0 {
		n = max(o.MinDim, 2)
	}
	return make([]float64, n)
}

// parsePoint parses comma or space separated coordinates. An empty string
// is an empty point.
func parsePoint(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	p := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q: %w", f, err)
		}
		p = append(p, v)
	}
	return p, nil
}

// parsePoints parses points separated by semicolons.
func parsePoints(s string) ([][]float64, error) {
	var points [][]float64
	for i, part := range strings.Split(s, ";") {
		p, err := parsePoint(part)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		if len(p) > 0 {
			points = append(points, p)
		}
	}
	return points, nil
}

func initTracer() (func(context.Context) error, error) {
	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String("fwdad"),
		)),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return tp.Shutdown, nil
}
