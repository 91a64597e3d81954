package rpc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-plugin"
	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

const (
	PluginMapKey      = "tempo"
	serviceName       = "tempo.report.v1.ReportPlugin"
	jsonCodecName     = "json"
	methodGetMetadata = "/" + serviceName + "/GetMetadata"
	methodListFormats = "/" + serviceName + "/ListFormats"
	methodRender      = "/" + serviceName + "/Render"
)

var HandshakeConfig = plugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "TEMPO_PLUGIN",
	MagicCookieValue: "tempo",
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return jsonCodecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type Empty struct{}

type Metadata struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type FormatDescriptor struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Extension   string `json:"extension"`
}

type ListFormatsResponse struct {
	Formats []FormatDescriptor `json:"formats"`
}

type RenderRequest struct {
	FormatID     string            `json:"format_id"`
	SessionsJSON string            `json:"sessions_json"`
	Options      map[string]string `json:"options"`
}

type RenderResponse struct {
	Content  string `json:"content"`
	Filename string `json:"filename"`
}

type ReportPluginServer interface {
	GetMetadata(ctx context.Context, in *Empty) (*Metadata, error)
	ListFormats(ctx context.Context, in *Empty) (*ListFormatsResponse, error)
	Render(ctx context.Context, in *RenderRequest) (*RenderResponse, error)
}

type ReportPluginClient interface {
	GetMetadata(ctx context.Context) (*Metadata, error)
	ListFormats(ctx context.Context) (*ListFormatsResponse, error)
	Render(ctx context.Context, in *RenderRequest) (*RenderResponse, error)
}

type reportPluginClient struct {
	conn *grpc.ClientConn
}

func NewReportPluginClient(conn *grpc.ClientConn) ReportPluginClient {
	return &reportPluginClient{conn: conn}
}

func (c *reportPluginClient) GetMetadata(ctx context.Context) (*Metadata, error) {
	out := &Metadata{}
	if err := c.conn.Invoke(ctx, methodGetMetadata, &Empty{}, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reportPluginClient) ListFormats(ctx context.Context) (*ListFormatsResponse, error) {
	out := &ListFormatsResponse{}
	if err := c.conn.Invoke(ctx, methodListFormats, &Empty{}, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reportPluginClient) Render(ctx context.Context, in *RenderRequest) (*RenderResponse, error) {
	out := &RenderResponse{}
	if err := c.conn.Invoke(ctx, methodRender, in, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func RegisterReportPluginServer(server grpc.ServiceRegistrar, impl ReportPluginServer) {
	server.RegisterService(&grpc.ServiceDesc{
		ServiceName: serviceName,
		HandlerType: (*ReportPluginServer)(nil),
		Methods: []grpc.MethodDesc{
			{
				MethodName: "GetMetadata",
				Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
					in := &Empty{}
					if err := dec(in); err != nil {
						return nil, err
					}
					if interceptor == nil {
						return impl.GetMetadata(ctx, in)
					}
					info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodGetMetadata}
					handler := func(ctx context.Context, req any) (any, error) {
						empty, ok := req.(*Empty)
						if !ok {
							return nil, fmt.Errorf("invalid request type")
						}
						return impl.GetMetadata(ctx, empty)
					}
					return interceptor(ctx, in, info, handler)
				},
			},
			{
				MethodName: "ListFormats",
				Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
					in := &Empty{}
					if err := dec(in); err != nil {
						return nil, err
					}
					if interceptor == nil {
						return impl.ListFormats(ctx, in)
					}
					info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodListFormats}
					handler := func(ctx context.Context, req any) (any, error) {
						empty, ok := req.(*Empty)
						if !ok {
							return nil, fmt.Errorf("invalid request type")
						}
						return impl.ListFormats(ctx, empty)
					}
					return interceptor(ctx, in, info, handler)
				},
			},
			{
				MethodName: "Render",
				Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
					in := &RenderRequest{}
					if err := dec(in); err != nil {
						return nil, err
					}
					if interceptor == nil {
						return impl.Render(ctx, in)
					}
					info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodRender}
					handler := func(ctx context.Context, req any) (any, error) {
						inReq, ok := req.(*RenderRequest)
						if !ok {
							return nil, fmt.Errorf("invalid request type")
						}
						return impl.Render(ctx, inReq)
					}
					return interceptor(ctx, in, info, handler)
				},
			},
		},
		Streams:  []grpc.StreamDesc{},
		Metadata: "schemas/report-rpc-v1.proto",
	}, impl)
}

type GRPCPlugin struct {
	plugin.NetRPCUnsupportedPlugin
	Impl ReportPluginServer
}

func (p *GRPCPlugin) GRPCServer(_ *plugin.GRPCBroker, server *grpc.Server) error {
	RegisterReportPluginServer(server, p.Impl)
	return nil
}

func (p *GRPCPlugin) GRPCClient(_ context.Context, _ *plugin.GRPCBroker, conn *grpc.ClientConn) (any, error) {
	return NewReportPluginClient(conn), nil
}

func PluginMap(impl ReportPluginServer) map[string]plugin.Plugin {
	return map[string]plugin.Plugin{
		PluginMapKey: &GRPCPlugin{Impl: impl},
	}
}
