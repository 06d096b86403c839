package scorer

import (
	"context"
	"fmt"

	pb "github.com/eos-robotics/motion-core/gen/scorer"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/eos-robotics/motion-core/internal/cost"
)

// #region types

// SegmentScore holds one learned score from the scoring service.
type SegmentScore struct {
	Risk       float32
	Penalty    float32
	Confidence float32
}

// #endregion types

// #region client-struct

// Client wraps the gRPC connection to the neural scoring service. The
// service is an external collaborator: its output refines perception
// summaries before planning, it is never called from inside the core.
type Client struct {
	conn   *grpc.ClientConn
	client pb.ScorerServiceClient
}

// #endregion client-struct

// #region constructor

// NewClient connects to the scoring gRPC server.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{
		conn:   conn,
		client: pb.NewScorerServiceClient(conn),
	}, nil
}

// NewClientWithService creates a Client with an injected service
// implementation. Used for testing without a real gRPC connection.
func NewClientWithService(svc pb.ScorerServiceClient) *Client {
	return &Client{client: svc}
}

// Close shuts down the gRPC connection. A no-op for clients built with
// an injected service.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion constructor

// #region score

// ScoreSegments sends per-segment feature vectors to the scoring service.
func (c *Client) ScoreSegments(ctx context.Context, features [][]float32) ([]SegmentScore, error) {
	req := &pb.ScoreSegmentsRequest{
		Segments: make([]*pb.SegmentFeatures, len(features)),
	}
	for i, f := range features {
		req.Segments[i] = &pb.SegmentFeatures{Features: f}
	}

	resp, err := c.client.ScoreSegments(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("score segments rpc: %w", err)
	}

	scores := make([]SegmentScore, len(resp.Scores))
	for i, s := range resp.Scores {
		scores[i] = SegmentScore{
			Risk:       cost.Clamp01(s.Risk),
			Penalty:    cost.Clamp01(s.Penalty),
			Confidence: cost.Clamp01(s.Confidence),
		}
	}
	return scores, nil
}

// #endregion score

// #region features

// TerrainFeatures flattens a terrain analysis into per-segment feature
// vectors for scoring.
func TerrainFeatures(ta *cost.TerrainAnalysis) [][]float32 {
	features := make([][]float32, len(ta.Segments))
	for i, seg := range ta.Segments {
		features[i] = []float32{seg.Slope, seg.Roughness, seg.Stability}
	}
	return features
}

// AirspaceFeatures flattens an airspace analysis into a single feature
// vector for scoring.
func AirspaceFeatures(aa *cost.AirspaceAnalysis) [][]float32 {
	return [][]float32{{aa.ObstacleDensity, aa.TurbulenceLevel, aa.Wind.Speed}}
}

// MeanRisk averages the learned risk across scores, weighted by
// confidence. Returns 0 for an empty score set.
func MeanRisk(scores []SegmentScore) float32 {
	var sum, weight float32
	for _, s := range scores {
		sum += s.Risk * s.Confidence
		weight += s.Confidence
	}
	if weight == 0 {
		return 0
	}
	return sum / weight
}

// #endregion features
