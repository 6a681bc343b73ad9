package notification

import (
	"fmt"
	"strings"
	"time"

	"brightcover/internal/domain/entities"
	"brightcover/internal/domain/products"
)

// Thresholds above which a lead is flagged for priority follow-up in the
// sales alert.
const (
	highPriorityAge      = 60
	highPriorityCoverage = 5_000_000
)

func productLabel(t entities.ProductType) string {
	if p, ok := products.Lookup(t); ok {
		return p.Label
	}
	return string(t)
}

func formatAmount(v int64) string {
	// Groups digits western style; the frontends re-format for locale.
	s := fmt.Sprintf("%d", v)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	pre := len(s) % 3
	if pre > 0 {
		b.WriteString(s[:pre])
		if len(s) > pre {
			b.WriteString(",")
		}
	}
	for i := pre; i < len(s); i += 3 {
		b.WriteString(s[i : i+3])
		if i+3 < len(s) {
			b.WriteString(",")
		}
	}
	return b.String()
}

func isHighPriority(q entities.QuoteRequest) bool {
	return q.Age >= highPriorityAge || q.CoverageAmount >= highPriorityCoverage
}

func quoteConfirmationHTML(q entities.QuoteRequest) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>Your BrightCover Quote</title></head>
<body style="margin: 0; padding: 0; background-color: #F4F6F8; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Arial, sans-serif;">
  <table role="presentation" cellspacing="0" cellpadding="0" border="0" width="100%%" style="background-color: #F4F6F8;">
    <tr><td style="padding: 40px 20px;">
      <table role="presentation" cellspacing="0" cellpadding="0" border="0" width="600" style="margin: 0 auto; background-color: #FFFFFF; border-radius: 12px; overflow: hidden;">
        <tr><td style="padding: 32px 40px; background-color: #14532D; color: #FFFFFF;">
          <h1 style="margin: 0; font-size: 24px;">BrightCover Insurance</h1>
        </td></tr>
        <tr><td style="padding: 32px 40px;">
          <h2 style="margin: 0 0 12px; font-size: 20px; color: #111827;">Thank you, %s!</h2>
          <p style="margin: 0 0 24px; font-size: 15px; line-height: 1.6; color: #4B5563;">We received your %s quote request. An advisor will contact you within one working day. Keep this reference for any follow-up:</p>
          <p style="margin: 0 0 24px; padding: 16px; background-color: #F0FDF4; border: 1px solid #BBF7D0; border-radius: 8px; text-align: center; font-size: 20px; font-weight: 700; color: #14532D;">%s</p>
          <table role="presentation" cellspacing="0" cellpadding="0" border="0" width="100%%" style="font-size: 15px; color: #111827;">
            <tr><td style="padding: 8px 0; color: #6B7280;">Coverage</td><td style="padding: 8px 0; text-align: right;">&#8377;%s</td></tr>
            <tr><td style="padding: 8px 0; color: #6B7280;">Estimated annual premium</td><td style="padding: 8px 0; text-align: right; font-weight: 700;">&#8377;%s</td></tr>
            <tr><td style="padding: 8px 0; color: #6B7280;">Monthly</td><td style="padding: 8px 0; text-align: right;">&#8377;%s</td></tr>
          </table>
          <p style="margin: 24px 0 0; font-size: 13px; line-height: 1.6; color: #9CA3AF;">The estimate is indicative and subject to underwriting. &copy; %s BrightCover Insurance Brokers.</p>
        </td></tr>
      </table>
    </td></tr>
  </table>
</body>
</html>`,
		q.FirstName,
		productLabel(q.Product),
		q.Reference,
		formatAmount(q.CoverageAmount),
		formatAmount(q.EstimatedPremium),
		formatAmount(q.MonthlyPremium),
		time.Now().Format("2006"),
	)
}

func quoteConfirmationText(q entities.QuoteRequest) string {
	return fmt.Sprintf(`Hello %s,

Thank you for requesting a %s quote from BrightCover Insurance.

Reference: %s
Coverage: Rs. %s
Estimated annual premium: Rs. %s (Rs. %s/month)

An advisor will contact you within one working day. The estimate is
indicative and subject to underwriting.

BrightCover Insurance Brokers
`,
		q.FirstName,
		productLabel(q.Product),
		q.Reference,
		formatAmount(q.CoverageAmount),
		formatAmount(q.EstimatedPremium),
		formatAmount(q.MonthlyPremium),
	)
}

func quoteSalesAlertSubject(q entities.QuoteRequest) string {
	if isHighPriority(q) {
		return fmt.Sprintf("[HIGH PRIORITY] New %s lead %s", productLabel(q.Product), q.Reference)
	}
	return fmt.Sprintf("New %s lead %s", productLabel(q.Product), q.Reference)
}

func quoteSalesAlertText(q entities.QuoteRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New quote request %s\n\n", q.Reference)
	if isHighPriority(q) {
		b.WriteString("HIGH PRIORITY: senior applicant or large coverage.\n\n")
	}
	fmt.Fprintf(&b, "Name: %s %s\n", q.FirstName, q.LastName)
	fmt.Fprintf(&b, "Email: %s\n", q.Email)
	fmt.Fprintf(&b, "Phone: %s\n", q.Phone)
	fmt.Fprintf(&b, "Age: %d\n", q.Age)
	fmt.Fprintf(&b, "Product: %s (%s)\n", productLabel(q.Product), q.PlanType)
	fmt.Fprintf(&b, "Coverage: Rs. %s\n", formatAmount(q.CoverageAmount))
	fmt.Fprintf(&b, "Estimated premium: Rs. %s/year\n", formatAmount(q.EstimatedPremium))
	if q.Vehicle != nil {
		fmt.Fprintf(&b, "Vehicle: %s %s %d (%s)\n", q.Vehicle.Make, q.Vehicle.Model, q.Vehicle.Year, q.Vehicle.FuelType)
	}
	if q.Requirements != "" {
		fmt.Fprintf(&b, "Requirements: %s\n", q.Requirements)
	}
	fmt.Fprintf(&b, "\nSubmitted: %s\n", q.CreatedAt.Format(time.RFC1123))
	return b.String()
}

func contactAckText(m entities.ContactMessage) string {
	return fmt.Sprintf(`Hello %s,

We received your message and will get back to you shortly.

Reference: %s
Subject: %s

BrightCover Insurance Brokers
`, m.Name, m.Reference, m.Subject)
}

func contactAlertText(m entities.ContactMessage) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New contact message %s\n\n", m.Reference)
	fmt.Fprintf(&b, "Name: %s\n", m.Name)
	fmt.Fprintf(&b, "Email: %s\n", m.Email)
	if m.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", m.Phone)
	}
	fmt.Fprintf(&b, "Subject: %s\n\n", m.Subject)
	b.WriteString(m.Message)
	b.WriteString("\n")
	return b.String()
}
