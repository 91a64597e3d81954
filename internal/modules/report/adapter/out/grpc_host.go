package out

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"time"

	reportrpc "tempo/internal/modules/report/adapter/out/rpc"
	"tempo/internal/modules/report/domain"
	reportout "tempo/internal/modules/report/port/out"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"
)

const (
	defaultStartTimeout  = 3 * time.Second
	defaultCallTimeout   = 5 * time.Second
	defaultRenderTimeout = 30 * time.Second
)

type GRPCHost struct{}

func NewGRPCHost() reportout.Host {
	return &GRPCHost{}
}

func (h *GRPCHost) CheckLifecycle(ctx context.Context, manifest domain.Manifest) error {
	client, closeFn, err := h.connect(manifest)
	if err != nil {
		return err
	}
	defer closeFn()

	callCtx, cancel := h.callContext(ctx, defaultCallTimeout)
	defer cancel()
	if _, err := client.GetMetadata(callCtx); err != nil {
		return fmt.Errorf("get metadata: %w", err)
	}
	return nil
}

func (h *GRPCHost) GetMetadata(ctx context.Context, manifest domain.Manifest) (domain.Metadata, error) {
	client, closeFn, err := h.connect(manifest)
	if err != nil {
		return domain.Metadata{}, err
	}
	defer closeFn()

	callCtx, cancel := h.callContext(ctx, defaultCallTimeout)
	defer cancel()

	meta, err := client.GetMetadata(callCtx)
	if err != nil {
		return domain.Metadata{}, fmt.Errorf("get metadata: %w", err)
	}
	return domain.Metadata{Name: meta.Name, Version: meta.Version}, nil
}

func (h *GRPCHost) ListFormats(ctx context.Context, manifest domain.Manifest) ([]domain.FormatDescriptor, error) {
	client, closeFn, err := h.connect(manifest)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	callCtx, cancel := h.callContext(ctx, defaultCallTimeout)
	defer cancel()

	response, err := client.ListFormats(callCtx)
	if err != nil {
		return nil, fmt.Errorf("list formats: %w", err)
	}
	out := make([]domain.FormatDescriptor, 0, len(response.Formats))
	for _, f := range response.Formats {
		out = append(out, domain.FormatDescriptor{
			ID:          f.ID,
			Title:       f.Title,
			Description: f.Description,
			Extension:   f.Extension,
		})
	}
	return out, nil
}

func (h *GRPCHost) Render(ctx context.Context, manifest domain.Manifest, input domain.RenderRequest) (domain.RenderResult, error) {
	client, closeFn, err := h.connect(manifest)
	if err != nil {
		return domain.RenderResult{}, err
	}
	defer closeFn()

	callCtx, cancel := h.callContext(ctx, defaultRenderTimeout)
	defer cancel()
	response, err := client.Render(callCtx, &reportrpc.RenderRequest{
		FormatID:     input.FormatID,
		SessionsJSON: input.SessionsJSON,
		Options:      input.Options,
	})
	if err != nil {
		if callCtx.Err() == context.DeadlineExceeded {
			return domain.RenderResult{}, fmt.Errorf("%w: format %s", domain.ErrRendererTimeout, input.FormatID)
		}
		return domain.RenderResult{}, fmt.Errorf("render: %w", err)
	}
	return domain.RenderResult{Content: response.Content, Filename: response.Filename}, nil
}

func (h *GRPCHost) connect(manifest domain.Manifest) (reportrpc.ReportPluginClient, func(), error) {
	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  reportrpc.HandshakeConfig,
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolGRPC},
		Plugins:          reportrpc.PluginMap(nil),
		Cmd:              exec.Command(manifest.Binary),
		Managed:          true,
		StartTimeout:     defaultStartTimeout,
		Logger:           hclog.New(&hclog.LoggerOptions{Output: io.Discard, Level: hclog.NoLevel}),
	})
	closeFn := func() { client.Kill() }

	rpcClient, err := client.Client()
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("start renderer client: %w", err)
	}
	raw, err := rpcClient.Dispense(reportrpc.PluginMapKey)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("dispense renderer: %w", err)
	}
	typed, ok := raw.(reportrpc.ReportPluginClient)
	if !ok {
		closeFn()
		return nil, nil, fmt.Errorf("renderer rpc client type mismatch")
	}
	return typed, closeFn, nil
}

func (h *GRPCHost) callContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := parent.Deadline(); ok {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, timeout)
}
