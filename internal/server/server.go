// Package server implements the gRPC suffix tree index service
package server

import (
	"context"
	"errors"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/nainya/gstindex/internal/logger"
	"github.com/nainya/gstindex/internal/metrics"
	"github.com/nainya/gstindex/pkg/query"
	"github.com/nainya/gstindex/pkg/suffixtree"
	pb "github.com/nainya/gstindex/proto"
)

// Server implements the SuffixTreeServiceServer interface
type Server struct {
	pb.UnimplementedSuffixTreeServiceServer

	engine  *query.Engine
	log     *logger.Logger
	metrics *metrics.Metrics
}

// NewServer creates a new gRPC server instance over an empty index.
// A nil logger discards logs; nil metrics disable instrumentation.
func NewServer(normalize bool, log *logger.Logger, m *metrics.Metrics) *Server {
	if log == nil {
		log = logger.Nop()
	}
	return &Server{
		engine:  query.NewEngine(normalize),
		log:     log.Component("index"),
		metrics: m,
	}
}

// Engine exposes the underlying query engine, mainly for tests.
func (s *Server) Engine() *query.Engine {
	return s.engine
}

// Stats reports document/node counts and the aggregation flag.
func (s *Server) Stats(ctx context.Context, req *pb.StatsRequest) (*pb.StatsResponse, error) {
	stats := s.engine.Stats()
	return &pb.StatsResponse{
		Documents:  int64(stats.Documents),
		Nodes:      int64(stats.Nodes),
		Aggregated: stats.Aggregated,
	}, nil
}

// Put indexes a document under a non-decreasing id.
func (s *Server) Put(ctx context.Context, req *pb.PutRequest) (*pb.PutResponse, error) {
	if req.Key == "" {
		return nil, status.Error(codes.InvalidArgument, "key is required")
	}
	if req.Id < 0 {
		return nil, status.Error(codes.InvalidArgument, "id must be non-negative")
	}

	start := time.Now()
	err := s.engine.Insert(req.Key, int(req.Id))
	s.log.Op("insert", time.Since(start), 1, err)
	if err != nil {
		return nil, toStatus(err)
	}

	s.metrics.RecordInsert(len(req.Key))
	stats := s.engine.Stats()
	s.metrics.UpdateIndexStats(stats.Nodes, stats.Documents)

	return &pb.PutResponse{}, nil
}

// Search returns the ids of documents containing the query as a substring.
func (s *Server) Search(ctx context.Context, req *pb.SearchRequest) (*pb.SearchResponse, error) {
	start := time.Now()
	results := s.engine.Search(req.Query)
	s.log.Op("search", time.Since(start), len(results), nil)
	s.metrics.RecordSearch(len(results))

	return &pb.SearchResponse{Ids: resultIDs(results)}, nil
}

// Similar returns the ids of documents whose similarity with the query
// exceeds the ratio.
func (s *Server) Similar(ctx context.Context, req *pb.SimilarRequest) (*pb.SimilarResponse, error) {
	start := time.Now()
	results, err := s.engine.Similar(req.Query, req.Ratio)
	s.log.Op("similar", time.Since(start), len(results), err)
	if err != nil {
		return nil, toStatus(err)
	}
	s.metrics.RecordSimilarity(len(results))

	return &pb.SimilarResponse{Ids: resultIDs(results)}, nil
}

// Aggregate fixes the per-node id sets after a batch of Puts.
func (s *Server) Aggregate(ctx context.Context, req *pb.AggregateRequest) (*pb.AggregateResponse, error) {
	start := time.Now()
	s.engine.Aggregate()
	duration := time.Since(start)

	stats := s.engine.Stats()
	s.metrics.RecordAggregation(duration)
	s.log.Info().
		Dur("duration_ms", duration).
		Int("nodes", stats.Nodes).
		Int("documents", stats.Documents).
		Msg("aggregation completed")

	return &pb.AggregateResponse{Nodes: int64(stats.Nodes)}, nil
}

// GetDocument returns the original text inserted under an id.
func (s *Server) GetDocument(ctx context.Context, req *pb.GetDocumentRequest) (*pb.GetDocumentResponse, error) {
	doc, ok := s.engine.Document(int(req.Id))
	if !ok {
		return nil, status.Errorf(codes.NotFound, "document %d not found", req.Id)
	}
	return &pb.GetDocumentResponse{Text: doc}, nil
}

func resultIDs(results []query.Result) []int64 {
	ids := make([]int64, 0, len(results))
	for _, r := range results {
		ids = append(ids, int64(r.ID))
	}
	return ids
}

// toStatus maps index errors onto gRPC status codes.
func toStatus(err error) error {
	switch {
	case errors.Is(err, suffixtree.ErrNotAggregated):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, suffixtree.ErrIndexOrder), errors.Is(err, suffixtree.ErrInvalidRatio):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
