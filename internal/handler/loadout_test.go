package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ufoaiorg/ufoai-sub020/internal/csi"
	"github.com/ufoaiorg/ufoai-sub020/internal/domain"
	"github.com/ufoaiorg/ufoai-sub020/internal/loadout"
)

type MockPreviewer struct {
	mock.Mock
}

func (m *MockPreviewer) Preview(ctx context.Context, req loadout.PreviewRequest) (*loadout.Preview, error) {
	args := m.Called(ctx, req)
	if p := args.Get(0); p != nil {
		return p.(*loadout.Preview), args.Error(1)
	}
	return nil, args.Error(1)
}

func postLoadout(h http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/api/v1/loadout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHandleGenerateLoadout_Melee(t *testing.T) {
	reg, err := csi.Default()
	require.NoError(t, err)
	previewer, err := loadout.NewPreviewer(reg, loadout.DefaultConfig())
	require.NoError(t, err)

	w := postLoadout(HandleGenerateLoadout(previewer), `{"team":"bloodspider","power":50,"speed":50,"seed":7}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var preview loadout.Preview
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &preview))
	assert.Equal(t, "bloodspider", preview.Team)
	assert.True(t, preview.Armed)
	require.Len(t, preview.Containers, 1)
	assert.Equal(t, "right", preview.Containers[0].ID)
	assert.Equal(t, "kerrblade", preview.Containers[0].Items[0].ID)
	assert.Zero(t, previewer.InUse())
}

func TestHandleGenerateLoadout_PassesSkills(t *testing.T) {
	previewer := &MockPreviewer{}
	previewer.On("Preview", mock.Anything, mock.MatchedBy(func(req loadout.PreviewRequest) bool {
		return req.Team == "human" && req.Equipment == "soldier_default" &&
			req.Skills.Power == 40 && req.Skills.Mind == 10 && req.Seed == 3
	})).Return(&loadout.Preview{Team: "human", Kind: loadout.KindNormal, Armed: true}, nil)

	w := postLoadout(HandleGenerateLoadout(previewer),
		`{"team":"human","equipment":"soldier_default","power":40,"mind":10,"seed":3}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"armed":true`)
	previewer.AssertExpectations(t)
}

func TestHandleGenerateLoadout_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		previewErr error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "malformed json",
			body:       `{"team":`,
			wantStatus: http.StatusBadRequest,
			wantBody:   ErrMsgInvalidRequest,
		},
		{
			name:       "unknown field",
			body:       `{"team":"human","luck":3}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   ErrMsgInvalidRequest,
		},
		{
			name:       "missing team",
			body:       `{"power":10}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"team":"This field is required"`,
		},
		{
			name:       "skill out of range",
			body:       `{"team":"human","speed":120}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"speed":"Must be at most 100"`,
		},
		{
			name:       "unknown team",
			body:       `{"team":"humans"}`,
			previewErr: fmt.Errorf("%w: humans (did you mean human?)", domain.ErrTeamNotFound),
			wantStatus: http.StatusNotFound,
			wantBody:   "did you mean human?",
		},
		{
			name:       "generator failure",
			body:       `{"team":"human"}`,
			previewErr: fmt.Errorf("equip human: %w", assert.AnError),
			wantStatus: http.StatusInternalServerError,
			wantBody:   ErrMsgGenericServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			previewer := &MockPreviewer{}
			if tt.previewErr != nil {
				previewer.On("Preview", mock.Anything, mock.Anything).Return(nil, tt.previewErr)
			}

			w := postLoadout(HandleGenerateLoadout(previewer), tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			previewer.AssertExpectations(t)
		})
	}
}
