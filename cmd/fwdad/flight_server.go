package main

import (
	"errors"

	"github.com/23skdu/fwdad/internal/grad"
	"github.com/23skdu/fwdad/internal/objective"
	"github.com/23skdu/fwdad/internal/records"
	"github.com/apache/arrow-go/v18/arrow/flight"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var putRows = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "fwdad_flight_put_rows_total",
	Help: "Rows received through Flight DoPut",
}, []string{"dataset"})

type FwdadFlightServer struct {
	flight.BaseFlightServer
	registry  *objective.Registry
	evaluator *grad.Evaluator
	alloc     memory.Allocator
}

func NewFwdadFlightServer(reg *objective.Registry, ev *grad.Evaluator) *FwdadFlightServer {
	return &FwdadFlightServer{
		registry:  reg,
		evaluator: ev,
		alloc:     memory.NewGoAllocator(),
	}
}

func descriptorName(fd *flight.FlightDescriptor) (string, error) {
	if fd == nil || len(fd.GetPath()) == 0 {
		return "", status.Error(codes.InvalidArgument, "flight descriptor must carry a path")
	}
	return fd.GetPath()[0], nil
}

// DoExchange differentiates the objective named by the descriptor path at
// every point of every incoming batch and streams back one result batch
// per input batch.
func (s *FwdadFlightServer) DoExchange(stream flight.FlightService_DoExchangeServer) error {
	ctx, span := tracer.Start(stream.Context(), "DoExchange")
	defer span.End()

	reader, err := flight.NewRecordReader(stream, ipc.WithAllocator(s.alloc))
	if err != nil {
		return err
	}
	defer reader.Release()

	name, err := descriptorName(reader.LatestFlightDescriptor())
	if err != nil {
		return err
	}
	o, err := s.registry.Lookup(name)
	if err != nil {
		return status.Error(codes.NotFound, err.Error())
	}
	dim, err := records.Dim(reader.Schema())
	if err != nil {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	if err := o.CheckDim(dim); err != nil {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	span.SetAttributes(attribute.String("objective", o.Name))

	writer := flight.NewRecordWriter(stream, ipc.WithSchema(records.ResultSchema(dim)), ipc.WithAllocator(s.alloc))

	b := records.NewBuilder(s.alloc)
	total := 0
	for reader.Next() {
		points, err := records.DecodePoints(reader.Record())
		if err != nil {
			return status.Error(codes.InvalidArgument, err.Error())
		}
		if len(points) == 0 {
			continue
		}
		results, err := s.evaluator.Evaluate(ctx, o, points)
		if err != nil {
			span.RecordError(err)
			if errors.Is(err, objective.ErrDimension) {
				return status.Error(codes.InvalidArgument, err.Error())
			}
			return err
		}
		rec, err := b.Results(results)
		if err != nil {
			return err
		}
		err = writer.Write(rec)
		rec.Release()
		if err != nil {
			return err
		}
		total += len(points)
	}
	if err := reader.Err(); err != nil {
		return err
	}
	pointsProcessed.Add(float64(total))
	log.Debug().Str("objective", o.Name).Int("points", total).Msg("DoExchange complete")
	return writer.Close()
}

// DoPut accepts forwarded result batches and counts them per dataset.
func (s *FwdadFlightServer) DoPut(stream flight.FlightService_DoPutServer) error {
	reader, err := flight.NewRecordReader(stream, ipc.WithAllocator(s.alloc))
	if err != nil {
		return err
	}
	defer reader.Release()

	dataset, err := descriptorName(reader.LatestFlightDescriptor())
	if err != nil {
		return err
	}
	for reader.Next() {
		rec := reader.Record()
		putRows.WithLabelValues(dataset).Add(float64(rec.NumRows()))
		log.Info().Str("dataset", dataset).Int64("rows", rec.NumRows()).Msg("DoPut received batch")
	}
	return reader.Err()
}

func newFlightServer(reg *objective.Registry, ev *grad.Evaluator) flight.Server {
	server := flight.NewServerWithMiddleware(nil)
	server.RegisterFlightService(NewFwdadFlightServer(reg, ev))
	return server
}

func StartFlightServer(addr string, reg *objective.Registry, ev *grad.Evaluator) {
	server := newFlightServer(reg, ev)
	if err := server.Init(addr); err != nil {
		log.Fatal().Err(err).Msg("Failed to init Flight server")
	}

	log.Info().Str("addr", addr).Msg("Starting fwdad Flight server")
	if err := server.Serve(); err != nil {
		log.Fatal().Err(err).Msg("Flight server failed")
	}
}
