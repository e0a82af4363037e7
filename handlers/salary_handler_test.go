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

func TestCreateSalaryComputesNet(t *testing.T) {
	employee := &models.User{ID: primitive.NewObjectID(), Email: "paid@example.com"}
	userRepo := newFakeUserRepo(employee)
	salaryRepo := newFakeSalaryRepo()
	h := NewSalaryHandler(salaryRepo, userRepo, true)

	app := newTestApp(&models.Claims{UserID: primitive.NewObjectID(), Role: models.RoleAdmin})
	app.Post("/salaries", h.CreateSalary)

	resp := postJSON(app, http.MethodPost, "/salaries", models.SalaryCreatePayload{
		UserID:      employee.ID.Hex(),
		Month:       "June",
		Year:        2025,
		BasicSalary: 50000,
		Allowances:  5000,
		Deductions:  2000,
		Bonus:       1000,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		Data models.Salary `json:"data"`
	}
	decodeBody(t, resp, &body)
	assert.InDelta(t, 54000, body.Data.NetSalary, 0.001)
	assert.Equal(t, models.SalaryPending, body.Data.Status)
	assert.Nil(t, body.Data.PaidDate)
}

func TestCreateSalaryUnknownEmployeeRejected(t *testing.T) {
	h := NewSalaryHandler(newFakeSalaryRepo(), newFakeUserRepo(), true)

	app := newTestApp(&models.Claims{UserID: primitive.NewObjectID(), Role: models.RoleAdmin})
	app.Post("/salaries", h.CreateSalary)

	resp := postJSON(app, http.MethodPost, "/salaries", models.SalaryCreatePayload{
		UserID:      primitive.NewObjectID().Hex(),
		Month:       "June",
		Year:        2025,
		BasicSalary: 50000,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateSalaryStatusPaidStampsDate(t *testing.T) {
	salary := &models.Salary{
		UserID: primitive.NewObjectID(),
		Status: models.SalaryPending,
	}
	salaryRepo := newFakeSalaryRepo(salary)
	h := NewSalaryHandler(salaryRepo, newFakeUserRepo(), true)
	paidAt := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)
	h.now = func() time.Time { return paidAt }

	app := newTestApp(&models.Claims{UserID: primitive.NewObjectID(), Role: models.RoleAdmin})
	app.Patch("/salaries/:id/status", h.UpdateSalaryStatus)

	resp := postJSON(app, http.MethodPatch, "/salaries/"+salary.ID.Hex()+"/status", models.SalaryStatusPayload{
		Status: models.SalaryPaid,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	update := salaryRepo.updates[salary.ID]
	require.NotNil(t, update)
	assert.Equal(t, models.SalaryPaid, update["status"])
	assert.Equal(t, paidAt, update["paid_date"])
}

func TestUpdateSalaryStatusLeavingPaidClearsDate(t *testing.T) {
	paidAt := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)
	salary := &models.Salary{
		UserID:   primitive.NewObjectID(),
		Status:   models.SalaryPaid,
		PaidDate: &paidAt,
	}
	salaryRepo := newFakeSalaryRepo(salary)
	h := NewSalaryHandler(salaryRepo, newFakeUserRepo(), true)

	app := newTestApp(&models.Claims{UserID: primitive.NewObjectID(), Role: models.RoleAdmin})
	app.Patch("/salaries/:id/status", h.UpdateSalaryStatus)

	resp := postJSON(app, http.MethodPatch, "/salaries/"+salary.ID.Hex()+"/status", models.SalaryStatusPayload{
		Status: models.SalaryPending,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	update := salaryRepo.updates[salary.ID]
	require.NotNil(t, update)
	assert.Nil(t, update["paid_date"])
}

func TestUpdateSalaryStatusPaidCancelGate(t *testing.T) {
	salary := &models.Salary{
		UserID: primitive.NewObjectID(),
		Status: models.SalaryPaid,
	}
	salaryRepo := newFakeSalaryRepo(salary)
	h := NewSalaryHandler(salaryRepo, newFakeUserRepo(), false)

	app := newTestApp(&models.Claims{UserID: primitive.NewObjectID(), Role: models.RoleAdmin})
	app.Patch("/salaries/:id/status", h.UpdateSalaryStatus)

	resp := postJSON(app, http.MethodPatch, "/salaries/"+salary.ID.Hex()+"/status", models.SalaryStatusPayload{
		Status: models.SalaryCancelled,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// With the gate open the same transition succeeds.
	h = NewSalaryHandler(salaryRepo, newFakeUserRepo(), true)
	app = newTestApp(&models.Claims{UserID: primitive.NewObjectID(), Role: models.RoleAdmin})
	app.Patch("/salaries/:id/status", h.UpdateSalaryStatus)

	resp = postJSON(app, http.MethodPatch, "/salaries/"+salary.ID.Hex()+"/status", models.SalaryStatusPayload{
		Status: models.SalaryCancelled,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestDeleteSalaryNotFound(t *testing.T) {
	h := NewSalaryHandler(newFakeSalaryRepo(), newFakeUserRepo(), true)

	app := newTestApp(&models.Claims{UserID: primitive.NewObjectID(), Role: models.RoleAdmin})
	app.Delete("/salaries/:id", h.DeleteSalary)

	resp := postJSON(app, http.MethodDelete, "/salaries/"+primitive.NewObjectID().Hex(), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
