package codec

import (
	"context"
	"fmt"

	pb "github.com/langtell/go-scorer/gen/langtell"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// #region client-struct
// Client wraps the gRPC connection to a Python predictor service. One
// client per language model; the scorer consumes it through the
// Predictor contract.
type Client struct {
	conn   *grpc.ClientConn
	client pb.PredictorClient
}

// #endregion client-struct

// #region constructor
// NewClient connects to a predictor gRPC server.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{
		conn:   conn,
		client: pb.NewPredictorClient(conn),
	}, nil
}

// NewClientWithService creates a Client with an injected service implementation.
// Used for testing without a real gRPC connection.
func NewClientWithService(svc pb.PredictorClient) *Client {
	return &Client{client: svc}
}

// #endregion constructor

// #region close
// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// #endregion close

// #region predict
// Predict sends a batch of one-hot windows to the predictor service
// and returns one probability distribution per window, in input order.
// Matrices are flattened row-major for the wire.
func (c *Client) Predict(ctx context.Context, batch [][][]float32) ([][]float32, error) {
	windows := make([]*pb.OneHotWindow, len(batch))
	for i, matrix := range batch {
		win, err := flatten(matrix)
		if err != nil {
			return nil, fmt.Errorf("window %d: %w", i, err)
		}
		windows[i] = win
	}

	resp, err := c.client.Predict(ctx, &pb.PredictRequest{Windows: windows})
	if err != nil {
		return nil, fmt.Errorf("predict rpc: %w", err)
	}
	if len(resp.Distributions) != len(batch) {
		return nil, fmt.Errorf("predict rpc: %d distributions for %d windows", len(resp.Distributions), len(batch))
	}

	dists := make([][]float32, len(resp.Distributions))
	for i, d := range resp.Distributions {
		dists[i] = d.Probs
	}
	return dists, nil
}

// #endregion predict

// #region flatten
// flatten converts an L x |V| matrix to the wire shape. Rows must be
// uniform; a ragged matrix means the encoder is broken.
func flatten(matrix [][]float32) (*pb.OneHotWindow, error) {
	if len(matrix) == 0 {
		return nil, fmt.Errorf("empty window matrix")
	}
	cols := len(matrix[0])
	values := make([]float32, 0, len(matrix)*cols)
	for t, row := range matrix {
		if len(row) != cols {
			return nil, fmt.Errorf("ragged matrix: row %d has %d columns, row 0 has %d", t, len(row), cols)
		}
		values = append(values, row...)
	}
	return &pb.OneHotWindow{
		Rows:   int32(len(matrix)),
		Cols:   int32(cols),
		Values: values,
	}, nil
}

// #endregion flatten
