package mailerControllers

import (
	"fmt"
	"net/http"
	"net/mail"

	"github.com/gin-gonic/gin"
)

type NewsletterRequest struct {
	Email string `json:"email" binding:"required"`
}

const newsletterHTML = `<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; color: #333;">
    <h1>Welcome to the list!</h1>
    <p>Thanks for subscribing to our newsletter. You'll be the first to hear
    about new arrivals, seasonal sales and styling ideas.</p>
    <p>Until then, happy browsing.</p>
    <p style="color: #999; font-size: 12px;">You received this email because
    you signed up on our storefront.</p>
  </body>
</html>`

// POST /functions/newsletter: sends the welcome email to a new subscriber.
func SubscribeNewsletter() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req NewsletterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
			return
		}

		addr, err := mail.ParseAddress(req.Email)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid email address"})
			return
		}

		id, err := sendEmail(addr.Address, "Welcome to our newsletter", newsletterHTML)
		if err != nil {
			fmt.Println("❌ Newsletter email failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send welcome email"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
	}
}
