package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/dashboard-entregas-vendas/pkg/apiErrors"
	"github.com/vfg2006/dashboard-entregas-vendas/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeQueryError registra a falha da consulta e responde com o código de erro correspondente
func writeQueryError(w http.ResponseWriter, r *http.Request, section string, err error) {
	log.ForContext(r.Context()).WithFields(log.Fields{
		"section": section,
		"path":    r.URL.Path,
	}).WithError(err).Warn("Consulta indisponível")

	apiErrors.WriteFromError(w, err)
}
