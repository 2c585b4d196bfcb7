package ingesting

import "github.com/pkg/errors"

var (
	// ErrEmptyFile indica que o arquivo enviado não tem nenhuma linha
	ErrEmptyFile = errors.New("o arquivo enviado está vazio")

	// ErrMissingColumn indica que uma coluna obrigatória não está no cabeçalho
	ErrMissingColumn = errors.New("coluna obrigatória ausente no cabeçalho")
)
