package controller

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/jcastror/elfogon-backend/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressController_List(t *testing.T) {
	env := setupControllerTest(t)
	user := env.createUser(t, "juan")
	cookie := env.loginAs(t, user)
	env.createAddress(t, user.ID, "Casa")
	env.createAddress(t, user.ID, "Trabajo")

	req := httptest.NewRequest(http.MethodGet, "/addresses", nil)
	w := env.request(req, cookie)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "addresses 2")
}

func TestAddressController_Create_Success(t *testing.T) {
	env := setupControllerTest(t)
	user := env.createUser(t, "juan")
	cookie := env.loginAs(t, user)

	w := env.request(postForm("/addresses", url.Values{
		"label":     {"Casa"},
		"line1":     {"Calle 5, Av 10"},
		"city":      {"San José"},
		"reference": {"Portón verde"},
	}), cookie)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/addresses", w.Header().Get("Location"))

	var address model.Address
	require.NoError(t, env.db.Where("user_id = ?", user.ID).First(&address).Error)
	assert.Equal(t, "Casa", address.Label)
	assert.Equal(t, "Portón verde", address.Reference)
}

func TestAddressController_Create_MissingFields(t *testing.T) {
	env := setupControllerTest(t)
	user := env.createUser(t, "juan")
	cookie := env.loginAs(t, user)

	w := env.request(postForm("/addresses", url.Values{
		"city": {"San José"},
	}), cookie)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "required")
}

func TestAddressController_Delete_Own(t *testing.T) {
	env := setupControllerTest(t)
	user := env.createUser(t, "juan")
	cookie := env.loginAs(t, user)
	address := env.createAddress(t, user.ID, "Casa")

	w := env.request(postForm(fmt.Sprintf("/addresses/%d/delete", address.ID), url.Values{}), cookie)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/addresses", w.Header().Get("Location"))

	var count int64
	env.db.Model(&model.Address{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestAddressController_Delete_ForeignIsSilentNoOp(t *testing.T) {
	env := setupControllerTest(t)
	user := env.createUser(t, "juan")
	cookie := env.loginAs(t, user)

	other := env.createUser(t, "ana")
	foreign := env.createAddress(t, other.ID, "Casa Ana")

	// Same redirect as a successful delete, nothing removed
	w := env.request(postForm(fmt.Sprintf("/addresses/%d/delete", foreign.ID), url.Values{}), cookie)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/addresses", w.Header().Get("Location"))

	var count int64
	env.db.Model(&model.Address{}).Where("id = ?", foreign.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}
