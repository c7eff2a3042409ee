package wa

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	"github.com/dimasprtm/wa-reminder/internal/api/dto"
	"github.com/dimasprtm/wa-reminder/internal/config"
	mocks "github.com/dimasprtm/wa-reminder/internal/mocks/api/handlers/wa"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MockinboundService, *config.Config) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := mocks.NewMockinboundService(ctrl)
	cfg := &config.Config{Retry: retry.Strategy{}}
	handler := NewHandler(mockService, validator.New(), cfg)
	return handler, mockService, cfg
}

func TestHandler_Inbound_RepliesToSender(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)

	reqBody := dto.InboundRequest{
		From: "+6281200001111",
		Text: "remind me to drink water in 5 minutes",
	}

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/wa/inbound", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		HandleInbound(gomock.Any(), cfg.Retry, reqBody.From, reqBody.Text).
		Return("✅ Reminder *Drink Water* set!")

	handler.Inbound(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)

	var body struct {
		Success bool  `json:"success"`
		Data    Reply `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "reply", body.Data.Action)
	assert.Equal(t, reqBody.From, body.Data.To)
	assert.Equal(t, "✅ Reminder *Drink Water* set!", body.Data.Body)
}

func TestHandler_Inbound_MissingFields(t *testing.T) {
	handler, _, _ := setupHandler(t)

	bodyBytes, _ := json.Marshal(dto.InboundRequest{From: "+6281200001111"})
	req := httptest.NewRequest(http.MethodPost, "/api/wa/inbound", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Inbound(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Inbound_InvalidJSON(t *testing.T) {
	handler, _, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/wa/inbound", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Inbound(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}
