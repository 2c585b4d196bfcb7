package domain

// Orientações possíveis de um gráfico de barras.
const (
	OrientationHorizontal = "h"
	OrientationVertical   = "v"
)

// ChartBar é uma barra do gráfico: rótulo, valor e a cor resolvida para a
// série, mais os dados extras exibidos no hover.
type ChartBar struct {
	Label      string   `json:"label"`
	Value      float64  `json:"value"`
	Color      string   `json:"color"`
	HoverData  []string `json:"hover_data,omitempty"`
	CustomData string   `json:"custom_data,omitempty"`
}

// ChartSpec descreve um gráfico de barras para o colaborador de
// apresentação: campos de eixo, orientação, barras com cores resolvidas e
// template de hover. A renderização em si acontece no front-end; o PNG
// servido pela API é apenas uma prévia.
type ChartSpec struct {
	Title         string      `json:"title"`
	Orientation   string      `json:"orientation"`
	XField        string      `json:"x_field"`
	YField        string      `json:"y_field"`
	HoverTemplate string      `json:"hover_template,omitempty"`
	Bars          []*ChartBar `json:"bars"`
}
