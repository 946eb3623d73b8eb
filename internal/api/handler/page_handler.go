package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/payd/web/internal/core/ports"
)

// PageHandler serves the data each page renders with. Guards run before it,
// so the handlers only shape the response.
type PageHandler struct {
	pages ports.PageService
}

func NewPageHandler(pages ports.PageService) *PageHandler {
	return &PageHandler{pages: pages}
}

// Login serves the login page.
//
// @Summary      Login page data
// @Tags         pages
// @Produce      json
// @Success      200  {object}  emptyPage
// @Router       /login [get]
func (h *PageHandler) Login(c echo.Context) error {
	return c.JSON(http.StatusOK, emptyPage{})
}

// AppLayout returns the signed-in user shared by every authenticated page.
//
// @Summary      Authenticated layout data
// @Tags         pages
// @Produce      json
// @Success      200  {object}  ports.AppLayoutData
// @Success      302  "redirect to the login page"
// @Router       / [get]
func (h *PageHandler) AppLayout(c echo.Context) error {
	return c.JSON(http.StatusOK, ports.AppLayoutData{User: currentUser(c)})
}

// AdminLayout answers for the admin area root once the admin guard passed.
//
// @Summary      Admin layout data
// @Tags         pages
// @Produce      json
// @Success      200  {object}  emptyPage
// @Failure      404  {object}  errorResponse
// @Router       /admin [get]
func (h *PageHandler) AdminLayout(c echo.Context) error {
	return c.JSON(http.StatusOK, emptyPage{})
}

// RegisterPage returns the roles an admin may assign to a new user.
//
// @Summary      Registration page data
// @Tags         pages
// @Produce      json
// @Success      200  {object}  ports.RegisterPageData
// @Failure      404  {object}  errorResponse
// @Router       /admin/register [get]
func (h *PageHandler) RegisterPage(c echo.Context) error {
	return c.JSON(http.StatusOK, h.pages.LoadRegisterPage(upstreamCtx(c)))
}

// ActivatePage returns the pending account id from the activation link.
//
// @Summary      Activation page data
// @Tags         pages
// @Produce      json
// @Param        slug  path      string  true  "Pending account id"
// @Success      200   {object}  ports.ActivatePageData
// @Router       /activate/{slug} [get]
func (h *PageHandler) ActivatePage(c echo.Context) error {
	return c.JSON(http.StatusOK, h.pages.LoadActivatePage(c.Param("slug")))
}
