package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"employee-management-system/models"
)

func TestCreateLeaveComputesTotalDays(t *testing.T) {
	userID := primitive.NewObjectID()
	leaveRepo := newFakeLeaveRepo()
	h := NewLeaveHandler(leaveRepo)

	app := newTestApp(&models.Claims{UserID: userID, Role: models.RoleEmployee})
	app.Post("/leaves", h.CreateLeave)

	resp := postJSON(app, http.MethodPost, "/leaves", models.LeaveCreatePayload{
		LeaveType: "Annual Leave",
		FromDate:  "2025-01-01",
		ToDate:    "2025-01-03",
		Reason:    "Family trip",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		Data models.Leave `json:"data"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, 3, body.Data.TotalDays)
	assert.Equal(t, models.LeavePending, body.Data.Status)
	assert.Equal(t, userID, body.Data.UserID)
}

func TestCreateLeaveFromAfterToRejected(t *testing.T) {
	h := NewLeaveHandler(newFakeLeaveRepo())

	app := newTestApp(&models.Claims{UserID: primitive.NewObjectID(), Role: models.RoleEmployee})
	app.Post("/leaves", h.CreateLeave)

	resp := postJSON(app, http.MethodPost, "/leaves", models.LeaveCreatePayload{
		LeaveType: "Sick Leave",
		FromDate:  "2025-01-05",
		ToDate:    "2025-01-03",
		Reason:    "Flu",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateLeaveStatusApprove(t *testing.T) {
	adminID := primitive.NewObjectID()
	leave := &models.Leave{
		UserID:    primitive.NewObjectID(),
		LeaveType: "Annual Leave",
		FromDate:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		ToDate:    time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC),
		Status:    models.LeavePending,
	}
	leaveRepo := newFakeLeaveRepo(leave)
	h := NewLeaveHandler(leaveRepo)

	app := newTestApp(&models.Claims{UserID: adminID, Role: models.RoleAdmin})
	app.Patch("/leaves/:id/status", h.UpdateLeaveStatus)

	resp := postJSON(app, http.MethodPatch, "/leaves/"+leave.ID.Hex()+"/status", models.LeaveStatusPayload{
		Status: models.LeaveApproved,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	update := leaveRepo.updates[leave.ID]
	require.NotNil(t, update)
	assert.Equal(t, models.LeaveApproved, update["status"])
	assert.Equal(t, adminID, update["approved_by"])
	assert.NotNil(t, update["approved_date"])
}

func TestUpdateLeaveStatusDecidedIsFinal(t *testing.T) {
	leave := &models.Leave{
		UserID: primitive.NewObjectID(),
		Status: models.LeaveApproved,
	}
	leaveRepo := newFakeLeaveRepo(leave)
	h := NewLeaveHandler(leaveRepo)

	app := newTestApp(&models.Claims{UserID: primitive.NewObjectID(), Role: models.RoleAdmin})
	app.Patch("/leaves/:id/status", h.UpdateLeaveStatus)

	resp := postJSON(app, http.MethodPatch, "/leaves/"+leave.ID.Hex()+"/status", models.LeaveStatusPayload{
		Status: models.LeaveRejected,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateLeaveStatusRejectStoresReason(t *testing.T) {
	leave := &models.Leave{
		UserID: primitive.NewObjectID(),
		Status: models.LeavePending,
	}
	leaveRepo := newFakeLeaveRepo(leave)
	h := NewLeaveHandler(leaveRepo)

	app := newTestApp(&models.Claims{UserID: primitive.NewObjectID(), Role: models.RoleAdmin})
	app.Patch("/leaves/:id/status", h.UpdateLeaveStatus)

	resp := postJSON(app, http.MethodPatch, "/leaves/"+leave.ID.Hex()+"/status", models.LeaveStatusPayload{
		Status:          models.LeaveRejected,
		RejectionReason: "Insufficient coverage",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	update := leaveRepo.updates[leave.ID]
	require.NotNil(t, update)
	assert.Equal(t, "Insufficient coverage", update["rejection_reason"])
}

func TestUpdateLeaveStatusRejectWithoutReasonRejected(t *testing.T) {
	leave := &models.Leave{
		UserID: primitive.NewObjectID(),
		Status: models.LeavePending,
	}
	leaveRepo := newFakeLeaveRepo(leave)
	h := NewLeaveHandler(leaveRepo)

	app := newTestApp(&models.Claims{UserID: primitive.NewObjectID(), Role: models.RoleAdmin})
	app.Patch("/leaves/:id/status", h.UpdateLeaveStatus)

	resp := postJSON(app, http.MethodPatch, "/leaves/"+leave.ID.Hex()+"/status", models.LeaveStatusPayload{
		Status: models.LeaveRejected,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Nil(t, leaveRepo.updates[leave.ID])
}

func TestDeleteLeaveOwnerPendingOnly(t *testing.T) {
	ownerID := primitive.NewObjectID()
	pending := &models.Leave{UserID: ownerID, Status: models.LeavePending}
	approved := &models.Leave{UserID: ownerID, Status: models.LeaveApproved}
	foreign := &models.Leave{UserID: primitive.NewObjectID(), Status: models.LeavePending}
	leaveRepo := newFakeLeaveRepo(pending, approved, foreign)
	h := NewLeaveHandler(leaveRepo)

	app := newTestApp(&models.Claims{UserID: ownerID, Role: models.RoleEmployee})
	app.Delete("/leaves/:id", h.DeleteLeave)

	resp := postJSON(app, http.MethodDelete, "/leaves/"+pending.ID.Hex(), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postJSON(app, http.MethodDelete, "/leaves/"+approved.ID.Hex(), nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = postJSON(app, http.MethodDelete, "/leaves/"+foreign.ID.Hex(), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestDeleteLeaveAdminMayDeleteAny(t *testing.T) {
	approved := &models.Leave{UserID: primitive.NewObjectID(), Status: models.LeaveApproved}
	leaveRepo := newFakeLeaveRepo(approved)
	h := NewLeaveHandler(leaveRepo)

	app := newTestApp(&models.Claims{UserID: primitive.NewObjectID(), Role: models.RoleAdmin})
	app.Delete("/leaves/:id", h.DeleteLeave)

	resp := postJSON(app, http.MethodDelete, "/leaves/"+approved.ID.Hex(), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
