package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thereayou/classlink/internal/handlers/dto"
	"github.com/thereayou/classlink/internal/logger"
	"github.com/thereayou/classlink/internal/models"
)

func messageRouter(store *fakeMessages, requester uuid.UUID) *gin.Engine {
	h := NewHTTPMessageHandler(store, logger.Discard())
	r := gin.New()
	api := r.Group("/api/messages", asPrincipal(requester, models.KindParent))
	api.GET("/classroom/:classroomId", h.GetClassroomMessages)
	api.GET("/private/:receiverId", h.GetPrivateMessages)
	api.POST("", h.CreateMessage)
	return r
}

func validPayload() gin.H {
	return gin.H{
		"content":        "Tomorrow is picture day",
		"sender":         "T1",
		"senderType":     "Teacher",
		"receiver":       "C1",
		"receiverType":   "Group",
		"classroom":      "C1",
		"isGroupMessage": true,
	}
}

func TestCreateMessage(t *testing.T) {
	store := &fakeMessages{}
	r := messageRouter(store, uuid.New())

	rec := doJSON(r, http.MethodPost, "/api/messages", validPayload(), "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var got dto.MessageResponse
	decode(t, rec, &got)
	require.Len(t, store.saved, 1)
	assert.Equal(t, store.saved[0].ID, got.ID)
	assert.False(t, got.CreatedAt.IsZero())
	assert.Equal(t, "Tomorrow is picture day", got.Content)
	assert.Equal(t, models.KindGroup, got.ReceiverKind)
	assert.True(t, got.IsGroupMessage)
}

func TestCreateMessage_Validation(t *testing.T) {
	cases := map[string]struct {
		mutate func(gin.H)
		field  string
	}{
		"missing content":       {func(p gin.H) { delete(p, "content") }, "content"},
		"empty sender":          {func(p gin.H) { p["sender"] = "" }, "sender"},
		"missing classroom":     {func(p gin.H) { delete(p, "classroom") }, "classroom"},
		"bad sender kind":       {func(p gin.H) { p["senderType"] = "Student" }, "senderType"},
		"group flag off":        {func(p gin.H) { p["isGroupMessage"] = false }, "isGroupMessage"},
		"group to another room": {func(p gin.H) { p["receiver"] = "C2" }, "isGroupMessage"},
		"parent to group": {func(p gin.H) {
			p["senderType"] = "Parent"
		}, "receiverType"},
		"teacher to teacher": {func(p gin.H) {
			p["receiver"], p["receiverType"], p["isGroupMessage"] = "T2", "Teacher", false
		}, "receiverType"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			store := &fakeMessages{}
			r := messageRouter(store, uuid.New())

			body := validPayload()
			tc.mutate(body)
			rec := doJSON(r, http.MethodPost, "/api/messages", body, "")
			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

			var resp struct {
				Error  string            `json:"error"`
				Fields map[string]string `json:"fields"`
			}
			decode(t, rec, &resp)
			assert.Contains(t, resp.Fields, tc.field)
			assert.Empty(t, store.saved)
		})
	}
}

func TestCreateMessage_PrivateParentToTeacher(t *testing.T) {
	store := &fakeMessages{}
	r := messageRouter(store, uuid.New())

	rec := doJSON(r, http.MethodPost, "/api/messages", gin.H{
		"content":      "Is homework due Friday?",
		"sender":       "P1",
		"senderType":   "Parent",
		"receiver":     "T1",
		"receiverType": "Teacher",
		"classroom":    "C1",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.False(t, store.saved[0].IsGroupMessage)
}

func TestCreateMessage_MalformedBody(t *testing.T) {
	r := messageRouter(&fakeMessages{}, uuid.New())
	rec := doJSON(r, http.MethodPost, "/api/messages", "not an object", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateMessage_StoreFailure(t *testing.T) {
	r := messageRouter(&fakeMessages{err: errStore}, uuid.New())
	rec := doJSON(r, http.MethodPost, "/api/messages", validPayload(), "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetClassroomMessages(t *testing.T) {
	requester := uuid.New()
	store := &fakeMessages{history: []models.Message{
		{ID: uuid.New(), Content: "first", Classroom: "C1", IsGroupMessage: true},
		{ID: uuid.New(), Content: "second", Classroom: "C1", Receiver: requester.String()},
	}}
	r := messageRouter(store, requester)

	rec := doJSON(r, http.MethodGet, "/api/messages/classroom/C1", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []dto.MessageResponse
	decode(t, rec, &got)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Content)
	assert.Equal(t, "second", got[1].Content)
	assert.Equal(t, []string{"classroom", "C1", requester.String()}, store.lastQuery)
}

func TestGetPrivateMessages(t *testing.T) {
	requester := uuid.New()
	store := &fakeMessages{}
	r := messageRouter(store, requester)

	rec := doJSON(r, http.MethodGet, "/api/messages/private/T1", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
	assert.Equal(t, []string{"private", requester.String(), "T1"}, store.lastQuery)
}

func TestGetHistory_StoreFailure(t *testing.T) {
	r := messageRouter(&fakeMessages{err: errStore}, uuid.New())
	assert.Equal(t, http.StatusInternalServerError, doJSON(r, http.MethodGet, "/api/messages/classroom/C1", nil, "").Code)
	assert.Equal(t, http.StatusInternalServerError, doJSON(r, http.MethodGet, "/api/messages/private/T1", nil, "").Code)
}
