package redeemapi

import (
	"errors"
	"fmt"
	"net/http"

	"codedrop-app/internal/domain/activity"
	"codedrop-app/internal/domain/codes"
	"codedrop-app/internal/domain/download"
	"codedrop-app/internal/domain/redemption"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	DB       *gorm.DB
	Redeemer *redemption.Redeemer
	Activity *activity.Logger
}

// Lookup handles GET /redeem/:code. It runs the loose check only (code
// exists, work published); remaining uses are not checked here so a user
// who already has the confirmation screen open is not blocked by someone
// else consuming the last use in the meantime.
func (h *Handler) Lookup(c *gin.Context) {
	codeString := c.Param("code")

	code, err := codes.Validate(h.DB, codeString)
	if errors.Is(err, codes.ErrInvalidCode) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": fmt.Sprintf("The code %q has already been redeemed or is not valid.", codeString),
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up code"})
		return
	}

	c.JSON(http.StatusOK, toLookupResponse(code))
}

// Confirm handles POST /redeem/:code. This is the only transition that
// mutates persisted state: the use counter goes up, the redemption is
// logged, and a download token is bound to the session. Once the response
// goes out there is no undo.
func (h *Handler) Confirm(c *gin.Context) {
	codeString := c.Param("code")

	// Anything that can fail for reasons unrelated to the code itself is
	// checked before the counter moves: a confirmation must never consume a
	// use and then bail without handing over a token.
	rc := activity.FromRequest(c.Request)
	if err := rc.Validate(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record redemption"})
		return
	}
	token, err := download.MintToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to authorize download"})
		return
	}

	code, err := h.Redeemer.Redeem(c.Request.Context(), codeString)
	if errors.Is(err, redemption.ErrNotFound) || errors.Is(err, redemption.ErrExhausted) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": fmt.Sprintf("The code %q has already been redeemed or is not valid.", codeString),
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to redeem code"})
		return
	}

	if err := h.Activity.Record("Code Redeemed", code, code.ID, rc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record redemption"})
		return
	}

	session := sessions.Default(c)
	session.Set(download.SessionKey, token)
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to authorize download"})
		return
	}

	resp := ConfirmResponse{Code: code.ID, Token: token}
	if code.Batch != nil {
		resp.Message = code.Batch.PublicMessageRendered
		if code.Batch.Work != nil {
			resp.Work = toWorkDTO(code.Batch.Work)
			resp.Files = toFileDTOs(code.Batch.Work.Files, token)
		}
	}
	c.JSON(http.StatusOK, resp)
}

// ManualEntry handles POST /redeem, the typed-in-code form. Unlike the URL
// entry point it applies the strict check, so a code with no uses left is
// rejected up front with an inline error.
func (h *Handler) ManualEntry(c *gin.Context) {
	var req ManualEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Enter your download code"})
		return
	}

	code, err := codes.ValidateStrict(h.DB, req.Code)
	if errors.Is(err, codes.ErrInvalidCode) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "The code you entered is not valid, or has already been redeemed.",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up code"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"redirect": code.RedeemURI()})
}
