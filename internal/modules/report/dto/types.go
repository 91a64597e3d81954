package dto

type RendererInfo struct {
	Name    string
	Version string
	Enabled bool
	Binary  string
}

type FormatInfo struct {
	RendererName string
	ID           string
	Title        string
	Description  string
	Extension    string
}

type RenderInput struct {
	RendererName string
	FormatID     string
	SessionsJSON string
	Options      map[string]string
}

type RenderOutput struct {
	RendererName string
	FormatID     string
	Content      string
	Filename     string
}
