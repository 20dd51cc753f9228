package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-legacy-vault/internal/codec"
	"github.com/MKhiriev/go-legacy-vault/internal/logger"
	"github.com/MKhiriev/go-legacy-vault/internal/service"
	"github.com/MKhiriev/go-legacy-vault/internal/utils"
	"github.com/MKhiriev/go-legacy-vault/models"
)

// statusResponse is the body of every mutating endpoint.
type statusResponse struct {
	Status int    `json:"status"`
	Error  string `json:"error,omitempty"`
}

type transferRequest struct {
	BeneficiaryDID string `json:"beneficiary_did"`
}

const operationFailed = "operation failed"

func (h *Handler) getAssets(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	assets, err := h.services.VaultService.GetAggregated(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getAssets").Msg("failed to aggregate assets")
		h.writeError(w, r, 0, err)
		return
	}

	utils.WriteJSON(w, assets, http.StatusOK)
}

func (h *Handler) getAssetGroup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	group := pathParam(r, "group")

	records, err := h.services.VaultService.GetByGroup(r.Context(), group)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getAssetGroup").Str("group", group).Msg("failed to get group")
		h.writeError(w, r, 0, err)
		return
	}

	utils.WriteJSON(w, records, http.StatusOK)
}

func (h *Handler) createSecret(w http.ResponseWriter, r *http.Request) {
	var payload models.SecretPayload
	if !h.decodeBody(w, r, &payload) {
		return
	}

	code, err := h.services.VaultService.Create(r.Context(), models.Secret, payload)
	h.writeStatus(w, r, code, err)
}

func (h *Handler) createCredential(w http.ResponseWriter, r *http.Request) {
	var payload models.CredentialPayload
	if !h.decodeBody(w, r, &payload) {
		return
	}
	if err := h.checkAttachment(payload.AttachmentEncoded); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.createCredential").Msg("attachment rejected")
		h.writeError(w, r, 0, err)
		return
	}

	code, err := h.services.VaultService.Create(r.Context(), models.Credential, payload)
	h.writeStatus(w, r, code, err)
}

func (h *Handler) createBeneficiary(w http.ResponseWriter, r *http.Request) {
	var payload models.BeneficiaryPayload
	if !h.decodeBody(w, r, &payload) {
		return
	}

	code, err := h.services.VaultService.Create(r.Context(), models.Beneficiary, payload)
	h.writeStatus(w, r, code, err)
}

func (h *Handler) listBeneficiaries(w http.ResponseWriter, r *http.Request) {
	records, err := h.services.VaultService.ListBeneficiaries(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listBeneficiaries").Msg("failed to list beneficiaries")
		h.writeError(w, r, 0, err)
		return
	}

	utils.WriteJSON(w, records, http.StatusOK)
}

func (h *Handler) resolveBeneficiary(w http.ResponseWriter, r *http.Request) {
	did := pathParam(r, "did")

	ben, err := h.services.VaultService.ResolveBeneficiary(r.Context(), did)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.resolveBeneficiary").Msg("failed to resolve beneficiary")
		h.writeError(w, r, 0, err)
		return
	}

	utils.WriteJSON(w, models.NewBeneficiaryRef(ben), http.StatusOK)
}

func (h *Handler) updateRecord(w http.ResponseWriter, r *http.Request) {
	kind, err := models.ParseRecordKind(pathParam(r, "kind"))
	if err != nil {
		h.writeError(w, r, 0, err)
		return
	}

	var payload models.RecordPayload
	switch kind {
	case models.Credential:
		var p models.CredentialPayload
		if !h.decodeBody(w, r, &p) {
			return
		}
		if err = h.checkAttachment(p.AttachmentEncoded); err != nil {
			h.writeError(w, r, 0, err)
			return
		}
		payload = p
	case models.Secret:
		var p models.SecretPayload
		if !h.decodeBody(w, r, &p) {
			return
		}
		payload = p
	case models.Beneficiary:
		var p models.BeneficiaryPayload
		if !h.decodeBody(w, r, &p) {
			return
		}
		payload = p
	default:
		h.writeError(w, r, 0, fmt.Errorf("%w: %s", service.ErrUnsupportedKind, kind))
		return
	}

	code, err := h.services.VaultService.Update(r.Context(), pathParam(r, "id"), kind, payload)
	h.writeStatus(w, r, code, err)
}

func (h *Handler) deleteRecord(w http.ResponseWriter, r *http.Request) {
	code, err := h.services.VaultService.Delete(r.Context(), pathParam(r, "id"))
	h.writeStatus(w, r, code, err)
}

func (h *Handler) transferRecord(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	code, err := h.services.VaultService.TransferOne(r.Context(), pathParam(r, "id"), req.BeneficiaryDID)
	h.writeStatus(w, r, code, err)
}

// transferGroup answers 202 with the per-record outcomes even when some
// records failed.
func (h *Handler) transferGroup(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	result, err := h.services.VaultService.TransferGroup(r.Context(), pathParam(r, "group"), req.BeneficiaryDID)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.transferGroup").Msg("group transfer failed")
		h.writeError(w, r, 0, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusAccepted)
}

func (h *Handler) notify(w http.ResponseWriter, r *http.Request) {
	var payload models.NotificationPayload
	if !h.decodeBody(w, r, &payload) {
		return
	}

	code, err := h.services.VaultService.Notify(r.Context(), payload.Message, payload.RecipientDID)
	h.writeStatus(w, r, code, err)
}

// checkAttachment rejects undecodable attachments and those above the
// configured limit.
func (h *Handler) checkAttachment(encoded string) error {
	if encoded == "" {
		return nil
	}

	attachment, err := codec.DecodeToBinary(encoded, "attachment")
	if err != nil {
		return fmt.Errorf("%w: %w", service.ErrInvalidPayload, err)
	}

	return codec.CheckSizeLimit(attachment.Data, h.opts.AttachmentLimit)
}

func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.decodeBody").Msg(errInvalidJSON.Error())
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeError(w, r, 0, fmt.Errorf("%w: %w", codec.ErrAttachmentTooLarge, err))
			return false
		}
		h.writeError(w, r, 0, fmt.Errorf("%w: %w", errInvalidJSON, err))
		return false
	}
	return true
}

func (h *Handler) writeStatus(w http.ResponseWriter, r *http.Request, code int, err error) {
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writeStatus").
			Int("store_status", code).
			Msg(operationFailed)
		h.writeError(w, r, code, err)
		return
	}
	if code == 0 {
		code = http.StatusOK
	}

	utils.WriteJSON(w, statusResponse{Status: code}, code)
}

// writeError renders the generic failure body. storeCode is the status the
// record store replied with, if any.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, storeCode int, err error) {
	status := statusFromError(err)
	if storeCode == 0 {
		storeCode = status
	}

	if _, writeErr := utils.WriteJSON(w, statusResponse{Status: storeCode, Error: operationFailed}, status); writeErr != nil {
		logger.FromRequest(r).Err(writeErr).Str("func", "*Handler.writeError").Msg("failed to write response")
	}
}

// pathParam returns the decoded URL parameter. chi matches on RawPath when it
// is set, so only then does the value still need unescaping.
func pathParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return raw
	}
	if unescaped, err := url.PathUnescape(raw); err == nil {
		return unescaped
	}
	return raw
}
