// File: internal/mail/mailer.go
package mail

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"time"

	"coursehub/internal/config"
	"coursehub/internal/worker"
)

//go:embed templates/*.html
var templatesFS embed.FS

const defaultEndpoint = "https://www.unosend.co/api/v1/emails"

// Mailer 透過 unosend API 寄送驗證信
// 寄送一律交給 worker pool 在背景執行，失敗僅記錄日誌、不影響觸發的請求
type Mailer struct {
	apiKey    string
	from      string
	endpoint  string
	client    *http.Client
	pool      worker.Pool
	templates *template.Template
}

func New(cfg *config.Config, pool worker.Pool) (*Mailer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("解析郵件模板失敗: %w", err)
	}
	return &Mailer{
		apiKey:    cfg.UnosendAPIKey,
		from:      cfg.EmailFrom,
		endpoint:  defaultEndpoint,
		client:    &http.Client{Timeout: 10 * time.Second},
		pool:      pool,
		templates: tmpl,
	}, nil
}

type letterArgs struct {
	VerificationLink string
	Year             string
}

// SendVerification 排程寄送驗證信，立即返回
func (m *Mailer) SendVerification(recipient, verificationLink string) {
	m.dispatch(recipient, "verify.html", "Email verification", verificationLink)
}

// SendVerificationResend 排程重寄驗證信，立即返回
func (m *Mailer) SendVerificationResend(recipient, verificationLink string) {
	m.dispatch(recipient, "resend.html", "Email verification", verificationLink)
}

func (m *Mailer) dispatch(recipient, templateName, subject, verificationLink string) {
	m.pool.Submit(func() {
		if err := m.send(recipient, templateName, subject, verificationLink); err != nil {
			log.Printf("寄送郵件 %s 失敗: %v", templateName, err)
		}
	})
}

func (m *Mailer) send(recipient, templateName, subject, verificationLink string) error {
	var body bytes.Buffer
	err := m.templates.ExecuteTemplate(&body, templateName, letterArgs{
		VerificationLink: verificationLink,
		Year:             fmt.Sprint(time.Now().Year()),
	})
	if err != nil {
		return err
	}

	payload, err := json.Marshal(map[string]any{
		"from":    m.from,
		"to":      []string{recipient},
		"subject": subject,
		"html":    body.String(),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, m.endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("unosend 回應 %d", resp.StatusCode)
	}
	return nil
}
