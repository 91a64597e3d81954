package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	reportrpc "tempo/internal/modules/report/adapter/out/rpc"

	"github.com/hashicorp/go-plugin"
)

type session struct {
	Timestamp string  `json:"timestamp"`
	Duration  int     `json:"duration"`
	Remark    string  `json:"remark"`
	Location  string  `json:"location"`
	Rating    float64 `json:"rating"`
	Mood      string  `json:"mood"`
}

type server struct{}

func (s *server) GetMetadata(_ context.Context, _ *reportrpc.Empty) (*reportrpc.Metadata, error) {
	return &reportrpc.Metadata{
		Name:    "reference",
		Version: "1.0.0",
	}, nil
}

func (s *server) ListFormats(_ context.Context, _ *reportrpc.Empty) (*reportrpc.ListFormatsResponse, error) {
	return &reportrpc.ListFormatsResponse{Formats: []reportrpc.FormatDescriptor{
		{ID: "csv", Title: "CSV", Description: "One row per session", Extension: "csv"},
		{ID: "summary", Title: "Summary", Description: "Plain-text totals", Extension: "txt"},
	}}, nil
}

func (s *server) Render(_ context.Context, in *reportrpc.RenderRequest) (*reportrpc.RenderResponse, error) {
	var sessions []session
	if err := json.Unmarshal([]byte(in.SessionsJSON), &sessions); err != nil {
		return nil, fmt.Errorf("decode sessions document: %w", err)
	}

	switch in.FormatID {
	case "csv":
		var b strings.Builder
		b.WriteString("timestamp,duration,remark,location,rating,mood\n")
		for _, item := range sessions {
			fmt.Fprintf(&b, "%s,%d,%s,%s,%.1f,%s\n",
				item.Timestamp, item.Duration,
				csvEscape(item.Remark), csvEscape(item.Location),
				item.Rating, csvEscape(item.Mood))
		}
		return &reportrpc.RenderResponse{Content: b.String(), Filename: "sessions.csv"}, nil
	case "summary":
		total := 0
		for _, item := range sessions {
			total += item.Duration
		}
		content := fmt.Sprintf("sessions: %d\ntotal seconds: %d\n", len(sessions), total)
		return &reportrpc.RenderResponse{Content: content, Filename: "summary.txt"}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s", in.FormatID)
	}
}

func csvEscape(value string) string {
	if !strings.ContainsAny(value, ",\"\n") {
		return value
	}
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: reportrpc.HandshakeConfig,
		Plugins:         reportrpc.PluginMap(&server{}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
