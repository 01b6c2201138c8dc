package v1handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"stylist/internal/advisor"
	mockadvisor "stylist/internal/advisor/mock"
	"stylist/internal/api/handler/v1handler"
	"stylist/pkg/domain"
	"stylist/pkg/logger"
	"stylist/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

const (
	testToken = "valid-token"
	testUser  = domain.UserID("user_2b8f")
)

// stubVerifier accepts exactly one token and rejects everything else.
type stubVerifier struct{}

func (stubVerifier) Verify(_ context.Context, token string) (domain.UserID, error) {
	if token == testToken {
		return testUser, nil
	}

	return "", serrors.With(serrors.ErrInvalidCredential, "could not verify token")
}

func newTestRouter(t *testing.T) (*mockadvisor.MockAdvisor, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	adv := mockadvisor.NewMockAdvisor(ctrl)
	h := v1handler.New(v1handler.Deps{Advisor: adv}, v1handler.Options{MaxImageBytes: 1 << 20})

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(v1handler.WithAuth(stubVerifier{}))
		h.Routes(r)
	})

	return adv, r
}

func doRequest(t *testing.T, h http.Handler, req *http.Request, token string) *httptest.ResponseRecorder {
	t.Helper()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) (code, message string) {
	t.Helper()
	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Code, body.Message
}

func TestAuth_MissingToken(t *testing.T) {
	_, r := newTestRouter(t)

	rec := doRequest(t, r, httptest.NewRequest(http.MethodGet, "/wardrobe", nil), "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	code, _ := decodeError(t, rec)
	require.Equal(t, "INVALID_CREDENTIAL", code)
}

func TestAuth_BadToken(t *testing.T) {
	_, r := newTestRouter(t)

	rec := doRequest(t, r, httptest.NewRequest(http.MethodGet, "/wardrobe", nil), "forged")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListItems_Success(t *testing.T) {
	adv, r := newTestRouter(t)

	adv.EXPECT().Items(gomock.Any(), testUser, "", uint(v1handler.DefaultLimit)).
		Return([]domain.ClothingItem{{OwnerID: testUser, Category: domain.CategoryTop}}, "2026-08-01T12:00:00Z", nil)

	rec := doRequest(t, r, httptest.NewRequest(http.MethodGet, "/wardrobe", nil), testToken)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Items      []domain.ClothingItem `json:"items"`
		NextCursor string                `json:"nextCursor"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Items, 1)
	require.Equal(t, "2026-08-01T12:00:00Z", body.NextCursor)
}

func TestListItems_LimitClamped(t *testing.T) {
	adv, r := newTestRouter(t)

	adv.EXPECT().Items(gomock.Any(), testUser, "", uint(v1handler.MaxLimit)).Return(nil, "", nil)

	rec := doRequest(t, r, httptest.NewRequest(http.MethodGet, "/wardrobe?limit=5000", nil), testToken)
	require.Equal(t, http.StatusOK, rec.Code)

	// a nil page still serializes as an empty array, not null
	var body struct {
		Items []domain.ClothingItem `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Items)
}

func TestListItems_InvalidLimit(t *testing.T) {
	_, r := newTestRouter(t)

	rec := doRequest(t, r, httptest.NewRequest(http.MethodGet, "/wardrobe?limit=lots", nil), testToken)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	code, _ := decodeError(t, rec)
	require.Equal(t, "INVALID_INPUT", code)
}

func multipartImage(t *testing.T, field, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", `form-data; name="`+field+`"; filename="item.jpg"`)
	hdr.Set("Content-Type", contentType)
	part, err := mw.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func TestAddItem_Success(t *testing.T) {
	adv, r := newTestRouter(t)
	image := []byte{0xFF, 0xD8, 0xFF, 0x01}

	adv.EXPECT().AddItem(gomock.Any(), testUser, image, "image/jpeg").
		Return(&domain.ClothingItem{OwnerID: testUser, Category: domain.CategoryTop}, nil)

	body, contentType := multipartImage(t, "image", "image/jpeg", image)
	req := httptest.NewRequest(http.MethodPost, "/wardrobe/items", body)
	req.Header.Set("Content-Type", contentType)

	rec := doRequest(t, r, req, testToken)
	require.Equal(t, http.StatusCreated, rec.Code)

	var item domain.ClothingItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	require.Equal(t, domain.CategoryTop, item.Category)
}

func TestAddItem_MissingFile(t *testing.T) {
	_, r := newTestRouter(t)

	body, contentType := multipartImage(t, "attachment", "image/jpeg", []byte{1})
	req := httptest.NewRequest(http.MethodPost, "/wardrobe/items", body)
	req.Header.Set("Content-Type", contentType)

	rec := doRequest(t, r, req, testToken)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddItem_UpstreamFailure(t *testing.T) {
	adv, r := newTestRouter(t)

	adv.EXPECT().AddItem(gomock.Any(), testUser, gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(serrors.ErrUpstream, "tagging failed"))

	body, contentType := multipartImage(t, "image", "image/jpeg", []byte{1})
	req := httptest.NewRequest(http.MethodPost, "/wardrobe/items", body)
	req.Header.Set("Content-Type", contentType)

	rec := doRequest(t, r, req, testToken)
	require.Equal(t, http.StatusBadGateway, rec.Code)
	code, _ := decodeError(t, rec)
	require.Equal(t, "UPSTREAM", code)
}

func TestDeleteItem_Success(t *testing.T) {
	adv, r := newTestRouter(t)

	adv.EXPECT().Delete(gomock.Any(), testUser, gomock.Any()).Return(nil)

	req := httptest.NewRequest(http.MethodDelete,
		"/wardrobe/items/0b6a4c63-9a8e-4f62-9d3e-2f2d7a2f2c11", nil)
	rec := doRequest(t, r, req, testToken)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.Bytes())
}

func TestDeleteItem_InvalidID(t *testing.T) {
	_, r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/wardrobe/items/not-a-uuid", nil)
	rec := doRequest(t, r, req, testToken)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteItem_NotFound(t *testing.T) {
	adv, r := newTestRouter(t)

	adv.EXPECT().Delete(gomock.Any(), testUser, gomock.Any()).
		Return(serrors.With(serrors.ErrNotFound, "item not found"))

	req := httptest.NewRequest(http.MethodDelete,
		"/wardrobe/items/0b6a4c63-9a8e-4f62-9d3e-2f2d7a2f2c11", nil)
	rec := doRequest(t, r, req, testToken)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRecommend_Success(t *testing.T) {
	adv, r := newTestRouter(t)

	adv.EXPECT().Recommend(gomock.Any(), testUser, gomock.Any(), domain.TagConstraints{"category": "bottom"}).
		Return([]advisor.Recommendation{
			{Item: domain.ClothingItem{OwnerID: testUser, Category: domain.CategoryBottom}, Score: 1.0},
		}, nil)

	payload := `{"inputItemId":"0b6a4c63-9a8e-4f62-9d3e-2f2d7a2f2c11","filters":{"category":"bottom"}}`
	req := httptest.NewRequest(http.MethodPost, "/recommendations", io.NopCloser(bytes.NewBufferString(payload)))
	rec := doRequest(t, r, req, testToken)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Recommendations []struct {
			Item               domain.ClothingItem `json:"item"`
			CompatibilityScore float64             `json:"compatibilityScore"`
		} `json:"recommendations"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Recommendations, 1)
	require.InDelta(t, 1.0, body.Recommendations[0].CompatibilityScore, 1e-9)
}

func TestRecommend_MissingItemID(t *testing.T) {
	_, r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/recommendations", bytes.NewBufferString(`{"filters":{}}`))
	rec := doRequest(t, r, req, testToken)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecommend_UnknownErrorIsOpaque(t *testing.T) {
	adv, r := newTestRouter(t)

	adv.EXPECT().Recommend(gomock.Any(), testUser, gomock.Any(), gomock.Any()).
		Return(nil, io.ErrUnexpectedEOF)

	payload := `{"inputItemId":"0b6a4c63-9a8e-4f62-9d3e-2f2d7a2f2c11"}`
	req := httptest.NewRequest(http.MethodPost, "/recommendations", bytes.NewBufferString(payload))
	rec := doRequest(t, r, req, testToken)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	code, message := decodeError(t, rec)
	require.Equal(t, "UNKNOWN", code)
	require.Equal(t, "internal error", message)
}
