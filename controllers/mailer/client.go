package mailerControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// emailPayload is the transactional email provider's send-message shape.
type emailPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func getMailerConfig() (apiURL, apiKey, from string, err error) {
	apiURL = os.Getenv("EMAIL_API_URL")
	apiKey = os.Getenv("EMAIL_API_KEY")
	from = os.Getenv("EMAIL_FROM")
	if from == "" {
		from = "Furniture Store <no-reply@furniture.example>"
	}
	if apiURL == "" || apiKey == "" {
		return "", "", "", fmt.Errorf("email provider configuration missing")
	}
	return apiURL, apiKey, from, nil
}

// sendEmail posts one message to the provider, surfacing non-2xx bodies in
// the returned error. The provider's message id comes back on success.
func sendEmail(to, subject, html string) (string, error) {
	apiURL, apiKey, from, err := getMailerConfig()
	if err != nil {
		return "", err
	}

	body, _ := json.Marshal(emailPayload{
		From:    from,
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	})

	req, err := http.NewRequest("POST", apiURL, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach email provider: %v", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("email provider error (%d): %s", resp.StatusCode, string(respBody))
	}

	var sent struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(respBody, &sent)
	return sent.ID, nil
}
