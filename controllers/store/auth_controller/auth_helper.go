package auth_controller

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/Norvila-Ecommerce/norvila-store-backend/config"
	"github.com/Norvila-Ecommerce/norvila-store-backend/models"
	"github.com/Norvila-Ecommerce/norvila-store-backend/services"
	"github.com/Norvila-Ecommerce/norvila-store-backend/utils"
)

var auth *services.AuthService

// Init wires the auth service; called once from main before routes.
func Init(svc *services.AuthService) {
	auth = svc
}

// issueSession generates the JWT and sets the auth cookie.
func issueSession(c *gin.Context, user *models.User) (string, error) {
	token, err := utils.GenerateJWT(user.ID, user.Email, user.Name, user.Role)
	if err != nil {
		return "", err
	}

	isProd := os.Getenv("APP_ENV") == "production"
	c.SetCookie("auth_token", token, 24*60*60, "/", "", isProd, true)
	return token, nil
}

func clearSession(c *gin.Context) {
	c.SetCookie("auth_token", "", -1, "/", "", false, true)
}

func redirectToFrontendWithError(c *gin.Context, errorMsg string) {
	frontendURL := config.GetFrontendURL()
	redirectURL := fmt.Sprintf("%s/auth/error?message=%s", frontendURL, errorMsg)
	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}
