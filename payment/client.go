package payment

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// LineItem is one payment line sent to the processor. UnitAmount is in minor
// currency units (cents).
type LineItem struct {
	Name       string `json:"name"`
	UnitAmount int64  `json:"unit_amount"`
	Currency   string `json:"currency"`
	Quantity   int    `json:"quantity"`
}

// SessionResponse represents the processor's checkout-session response.
type SessionResponse struct {
	Session struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	} `json:"session"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// getPaymentConfig picks the processor endpoint and keys, test mode if needed
func getPaymentConfig() (apiURL, secretKey string, testMode int, err error) {
	apiURL = os.Getenv("PAYMENT_API_URL")
	secretKey = os.Getenv("PAYMENT_SECRET_KEY")
	testMode = 0

	mode := os.Getenv("PAYMENT_MODE")
	if mode == "sandbox" || mode == "dev" {
		testMode = 1
	}

	if apiURL == "" || secretKey == "" {
		return "", "", 0, fmt.Errorf("payment configuration missing")
	}
	return apiURL, secretKey, testMode, nil
}

// CreateCheckoutSession asks the processor for a hosted checkout session and
// returns its URL and reference.
func CreateCheckoutSession(orderRef string, items []LineItem, successURL, cancelURL string) (string, string, error) {
	apiURL, secretKey, testMode, err := getPaymentConfig()
	if err != nil {
		return "", "", err
	}

	payload := map[string]interface{}{
		"mode":                 "payment",
		"payment_method_types": []string{"card"},
		"test":                 testMode,
		"client_reference_id":  orderRef,
		"line_items":           items,
		"success_url":          successURL,
		"cancel_url":           cancelURL,
	}

	jsonData, _ := json.Marshal(payload)

	req, _ := http.NewRequest("POST", apiURL, bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+secretKey)

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("failed to reach payment processor: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("payment API error (%d): %s", resp.StatusCode, string(body))
	}

	var sessionResp SessionResponse
	if err := json.Unmarshal(body, &sessionResp); err != nil {
		return "", "", fmt.Errorf("failed to parse payment response: %v", err)
	}

	if sessionResp.Error != nil {
		return "", "", fmt.Errorf("payment error: %s", sessionResp.Error.Message)
	}

	if sessionResp.Session.URL == "" {
		return "", "", fmt.Errorf("payment processor returned empty session URL")
	}

	return sessionResp.Session.URL, sessionResp.Session.ID, nil
}
