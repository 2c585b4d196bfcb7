package charting

import (
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Cores normalmente associadas às plataformas. Plataformas fora da tabela
// recebem uma cor automática da paleta.
var platformColorNames = map[string]string{
	"YouTube UGC":              "red",
	"YouTube Official Content": "red",
	"YouTube Audio Tier":       "red",
	"Apple Music":              "pink",
	"TikTok":                   "pink",
	"Spotify":                  "green",
	"Yandex":                   "green",
	"Amazon Premium":           "orange",
	"Amazon Prime":             "orange",
	"Soundcloud":               "orange",
	"Pandora":                  "blue",
	"UMA (Vkontakte)":          "blue",
	"UMA (BOOM)":               "blue",
	"Facebook / Instagram":     "blue",
	"Netease":                  "grey",
}

var (
	colorPink = drawing.Color{R: 255, G: 105, B: 180, A: 255}
	colorGrey = drawing.Color{R: 128, G: 128, B: 128, A: 255}
)

var fillByColorName = map[string]drawing.Color{
	"red":    chart.ColorRed,
	"green":  chart.ColorGreen,
	"blue":   chart.ColorBlue,
	"orange": chart.ColorOrange,
	"pink":   colorPink,
	"grey":   colorGrey,
}

// PlatformColorName devolve a cor fixa da plataforma, ou vazio quando o
// colaborador de apresentação deve atribuir uma cor automática.
func PlatformColorName(platform string) string {
	return platformColorNames[platform]
}

// platformFillColor resolve a cor de preenchimento usada na prévia PNG.
// O índice alimenta a paleta padrão para plataformas desconhecidas.
func platformFillColor(platform string, index int) drawing.Color {
	if name, ok := platformColorNames[platform]; ok {
		return fillByColorName[name]
	}
	return chart.GetDefaultColor(index)
}
