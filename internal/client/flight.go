package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/23skdu/fwdad/internal/grad"
	"github.com/23skdu/fwdad/internal/records"
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/flight"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

// ErrCircuitOpen is returned without contacting the server while the
// breaker is open.
var ErrCircuitOpen = errors.New("circuit breaker open")

// FlightClient talks to a fwdad Flight server.
type FlightClient struct {
	client  flight.Client
	conn    *grpc.ClientConn
	breaker *CircuitBreaker
	mem     memory.Allocator
}

type Option func(*FlightClient)

// WithCircuitBreaker replaces the default breaker (5 failures, 30s).
func WithCircuitBreaker(cb *CircuitBreaker) Option {
	return func(c *FlightClient) { c.breaker = cb }
}

func WithAllocator(mem memory.Allocator) Option {
	return func(c *FlightClient) { c.mem = mem }
}

// NewFlightClient creates a new Flight client connected to the given address.
func NewFlightClient(addr string, opts ...Option) (*FlightClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}

	c := &FlightClient{
		client:  flight.NewClientFromConn(conn, nil),
		conn:    conn,
		breaker: NewCircuitBreaker(5, 30*time.Second),
		mem:     memory.NewGoAllocator(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Breaker exposes the client's circuit breaker.
func (c *FlightClient) Breaker() *CircuitBreaker {
	return c.breaker
}

func descriptor(name string) *flight.FlightDescriptor {
	return &flight.FlightDescriptor{
		Type: flight.DescriptorPATH,
		Path: []string{name},
	}
}

// DoExchange evaluates objective at every point on the server and returns
// the results in point order.
func (c *FlightClient) DoExchange(ctx context.Context, objective string, points [][]float64) ([]grad.Result, error) {
	if len(points) == 0 {
		return nil, nil
	}
	rec, err := records.NewBuilder(c.mem).Points(points)
	if err != nil {
		return nil, err
	}
	defer rec.Release()

	var results []grad.Result
	err = c.guard(func() error {
		results, err = c.exchange(ctx, objective, rec)
		return err
	})
	if err != nil {
		return nil, err
	}
	if len(results) != len(points) {
		return nil, fmt.Errorf("server returned %d results for %d points", len(results), len(points))
	}
	return results, nil
}

func (c *FlightClient) exchange(ctx context.Context, objective string, rec arrow.RecordBatch) ([]grad.Result, error) {
	stream, err := c.client.DoExchange(ctx)
	if err != nil {
		return nil, err
	}

	writer := flight.NewRecordWriter(stream, ipc.WithSchema(rec.Schema()), ipc.WithAllocator(c.mem))
	writer.SetFlightDescriptor(descriptor(objective))
	// io.EOF means the server already ended the call; its status is
	// returned by the reads below.
	if err := writer.Write(rec); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("send points: %w", err)
	}
	if err := writer.Close(); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("close writer: %w", err)
	}
	if err := stream.CloseSend(); err != nil {
		return nil, fmt.Errorf("close send: %w", err)
	}

	reader, err := flight.NewRecordReader(stream, ipc.WithAllocator(c.mem))
	if err != nil {
		return nil, fmt.Errorf("read results: %w", err)
	}
	defer reader.Release()

	var out []grad.Result
	for reader.Next() {
		batch, err := records.DecodeResults(reader.Record())
		if err != nil {
			return nil, err
		}
		out = append(out, batch...)
	}
	if err := reader.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// DoPut sends a RecordBatch to the given dataset on the server.
func (c *FlightClient) DoPut(ctx context.Context, datasetName string, record arrow.RecordBatch) error {
	return c.guard(func() error {
		stream, err := c.client.DoPut(ctx)
		if err != nil {
			return err
		}

		writer := flight.NewRecordWriter(stream, ipc.WithSchema(record.Schema()))
		writer.SetFlightDescriptor(descriptor(datasetName))
		if err := writer.Write(record); err != nil {
			return err
		}
		if err := writer.Close(); err != nil {
			return err
		}
		if err := stream.CloseSend(); err != nil {
			return err
		}
		// Drain acknowledgements until the server ends the call.
		for {
			if _, err := stream.Recv(); err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				return err
			}
		}
	})
}

func (c *FlightClient) guard(call func() error) error {
	if !c.breaker.Allow() {
		return ErrCircuitOpen
	}
	err := call()
	if err != nil && serverFailure(err) {
		c.breaker.Failure()
		return err
	}
	// A rejected request still proves the server is up.
	c.breaker.Success()
	return err
}

// serverFailure reports whether err means the server or the transport is
// unhealthy, as opposed to the server rejecting this particular request.
func serverFailure(err error) bool {
	switch status.Code(err) {
	case codes.NotFound, codes.InvalidArgument, codes.FailedPrecondition,
		codes.OutOfRange, codes.AlreadyExists, codes.PermissionDenied,
		codes.Unauthenticated, codes.Canceled:
		return false
	}
	return true
}

// Close closes the client connection.
func (c *FlightClient) Close() error {
	return c.conn.Close()
}
