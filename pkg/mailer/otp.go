package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"time"
)

const otpSubject = "Your YATRI-Q Login Code"

var otpTemplate = template.Must(template.New("otp").Parse(`<html>
  <body style="font-family: -apple-system, BlinkMacSystemFont, sans-serif; margin: 0; padding: 20px; background-color: #f8fafc;">
    <div style="max-width: 500px; margin: 0 auto; background: white; border-radius: 12px; overflow: hidden;">
      <div style="background: linear-gradient(135deg, #3b82f6, #1d4ed8); color: white; padding: 30px; text-align: center;">
        <h1 style="margin: 0; font-size: 24px;">YATRI-Q</h1>
        <p style="margin: 10px 0 0 0; opacity: 0.9;">Your smart travel companion</p>
      </div>
      <div style="padding: 40px 30px;">
        <h2 style="color: #1e293b; margin: 0 0 20px 0; font-size: 20px;">Your Login Code</h2>
        <p style="color: #64748b; line-height: 1.6;">Enter this {{len .Code}}-digit code to complete your login to YATRI-Q:</p>
        <div style="background: #f1f5f9; border: 2px solid #e2e8f0; border-radius: 8px; padding: 20px; text-align: center; margin: 30px 0;">
          <div style="font-size: 32px; font-weight: bold; color: #3b82f6; letter-spacing: 4px; font-family: monospace;">{{.Code}}</div>
        </div>
        <p style="color: #64748b; font-size: 14px;">This code will expire in <strong>{{.Minutes}} minutes</strong>. If you didn't request this code, you can safely ignore this email.</p>
      </div>
      <div style="background: #f8fafc; padding: 20px 30px; border-top: 1px solid #e2e8f0; text-align: center;">
        <p style="color: #94a3b8; margin: 0; font-size: 12px;">YATRI-Q - Plan, predict, and travel smarter</p>
      </div>
    </div>
  </body>
</html>`))

// OTPMessage renders the one-time passcode email for to.
func OTPMessage(to, code string, ttl time.Duration) (Message, error) {
	minutes := int(ttl / time.Minute)

	var buf bytes.Buffer
	err := otpTemplate.Execute(&buf, struct {
		Code    string
		Minutes int
	}{Code: code, Minutes: minutes})
	if err != nil {
		return Message{}, fmt.Errorf("render otp email: %w", err)
	}

	return Message{
		To:      to,
		Subject: otpSubject,
		HTML:    buf.String(),
		Text:    fmt.Sprintf("Your YATRI-Q login code is %s. It expires in %d minutes.", code, minutes),
	}, nil
}
