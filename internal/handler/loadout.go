package handler

import (
	"context"
	"net/http"

	"github.com/ufoaiorg/ufoai-sub020/internal/character"
	"github.com/ufoaiorg/ufoai-sub020/internal/loadout"
	"github.com/ufoaiorg/ufoai-sub020/internal/logger"
)

// LoadoutPreviewer generates throwaway loadouts.
type LoadoutPreviewer interface {
	Preview(ctx context.Context, req loadout.PreviewRequest) (*loadout.Preview, error)
}

// GenerateLoadoutRequest is the body of POST /api/v1/loadout
type GenerateLoadoutRequest struct {
	Name      string `json:"name" validate:"max=64"`
	Team      string `json:"team" validate:"required,max=64,defid"`
	Equipment string `json:"equipment" validate:"max=64,defid"`
	Power     int    `json:"power" validate:"gte=0,lte=100"`
	Speed     int    `json:"speed" validate:"gte=0,lte=100"`
	Accuracy  int    `json:"accuracy" validate:"gte=0,lte=100"`
	Mind      int    `json:"mind" validate:"gte=0,lte=100"`
	Seed      int64  `json:"seed"`
}

// HandleGenerateLoadout equips a throwaway actor and returns its containers.
func HandleGenerateLoadout(previewer LoadoutPreviewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GenerateLoadoutRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Generate loadout"); err != nil {
			return
		}

		preview, err := previewer.Preview(r.Context(), loadout.PreviewRequest{
			Name:      req.Name,
			Team:      req.Team,
			Equipment: req.Equipment,
			Skills: character.Skills{
				Power:    req.Power,
				Speed:    req.Speed,
				Accuracy: req.Accuracy,
				Mind:     req.Mind,
			},
			Seed: req.Seed,
		})
		if err != nil {
			respondServiceError(w, r, ErrMsgGenerateLoadoutFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgLoadoutGenerated,
			"team", preview.Team, "kind", preview.Kind, "armed", preview.Armed)
		respondJSON(w, http.StatusOK, preview)
	}
}
