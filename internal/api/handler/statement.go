package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	jsoniter "github.com/json-iterator/go"

	"github.com/muramets/Believe/infrastructure/statement"
	"github.com/muramets/Believe/internal/config"
	"github.com/muramets/Believe/internal/domain"
	"github.com/muramets/Believe/internal/usecases/ingesting"
	"github.com/muramets/Believe/internal/usecases/reporting"
	"github.com/muramets/Believe/pkg/apiErrors"
	"github.com/muramets/Believe/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// UploadResponse é devolvida após o upload: os metadados do extrato mais a
// tabela de top tracks, que a interface exibe imediatamente.
type UploadResponse struct {
	*domain.StatementSummary
	TopTracks *domain.TopTracksReport `json:"top_tracks"`
}

// UploadStatement recebe a planilha via multipart, detecta o separador,
// interpreta as linhas e guarda o extrato para a sessão
func UploadStatement(
	cfg *config.Config,
	ingester ingesting.Ingester,
	reporter reporting.Reporter,
	statementRepo statement.Repository,
) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		maxBytes := cfg.Analysis.MaxUploadSizeMB << 20
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

		file, header, err := r.FormFile("file")
		if err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				logger.WithField("limit", maxBytes).Warn("statements: upload exceeds size limit")
				apiErrors.WriteError(w, apiErrors.ErrFileTooLarge, "O arquivo excede o tamanho máximo permitido", nil)
				return
			}

			logger.WithError(err).Warn("statements: invalid multipart upload")
			apiErrors.WriteError(w, apiErrors.ErrInvalidUpload, "Não foi possível ler o arquivo enviado", nil)
			return
		}
		defer file.Close()

		stmt, err := ingester.Ingest(header.Filename, file)
		if err != nil {
			logger.WithError(err).WithField("filename", header.Filename).
				Warn("statements: failed to parse uploaded spreadsheet")

			// O erro de parse é devolvido ao usuário; o processo segue vivo
			apiErrors.WriteError(w, apiErrors.ErrUnparseableFile, err.Error(), nil)
			return
		}

		stmt, err = statementRepo.Save(stmt)
		if err != nil {
			logger.WithError(err).Error("statements: failed to store statement")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao guardar o extrato", nil)
			return
		}

		logger.WithFields(log.Fields{
			"statement_id": stmt.ID,
			"rows":         len(stmt.Records),
		}).Info("statements: statement uploaded")

		response := &UploadResponse{
			StatementSummary: stmt.Summary(),
			TopTracks:        reporter.TopTracks(stmt.Records),
		}

		respondJSON(w, http.StatusCreated, response)
	})
}

// GetStatement devolve os metadados de um extrato carregado
func GetStatement(statementRepo statement.Repository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stmt := findStatement(w, r, statementRepo)
		if stmt == nil {
			return
		}

		respondJSON(w, http.StatusOK, stmt.Summary())
	})
}

// DeleteStatement descarta um extrato antes do TTL
func DeleteStatement(statementRepo statement.Repository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if err := statementRepo.Delete(id); err != nil {
			logger.WithError(err).WithField("statement_id", id).Error("statements: failed to delete statement")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao descartar o extrato", nil)
			return
		}

		logger.WithField("statement_id", id).Info("statements: statement discarded")
		w.WriteHeader(http.StatusNoContent)
	})
}

// findStatement resolve o extrato da rota ou escreve 404 e devolve nil
func findStatement(w http.ResponseWriter, r *http.Request, statementRepo statement.Repository) *domain.Statement {
	logger := log.ForContext(r.Context())

	id := httprouter.ParamsFromContext(r.Context()).ByName("id")

	stmt, err := statementRepo.Get(id)
	if err != nil {
		logger.WithError(err).WithField("statement_id", id).Error("statements: failed to load statement")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao carregar o extrato", nil)
		return nil
	}

	if stmt == nil {
		apiErrors.WriteError(w, apiErrors.ErrStatementNotFound, "Extrato não encontrado ou expirado", nil)
		return nil
	}

	return stmt
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.L.WithError(err).Error("handler: failed to encode response")
	}
}
