// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package mailer delivers contact-form submissions over SMTP.
package mailer

import (
	"fmt"
	"net/smtp"
	"strings"
	"time"
)

// Mailer sends plain-text mail through a single SMTP account.
type Mailer struct {
	host string
	port string
	user string
	pass string
	from string
	to   string

	// send is swappable for tests.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// New creates a mailer. Returns nil if host or from/to are empty, so the
// app can run without mail delivery configured.
func New(host, port, user, pass, from, to string) *Mailer {
	if host == "" || from == "" || to == "" {
		return nil
	}
	return &Mailer{
		host: host,
		port: port,
		user: user,
		pass: pass,
		from: from,
		to:   to,
		send: smtp.SendMail,
	}
}

// SendContactMessage forwards a contact-form submission to the configured
// recipient. The visitor's address goes into Reply-To so replies reach them.
func (m *Mailer) SendContactMessage(name, email, message string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)

	if email == "" || message == "" {
		return fmt.Errorf("mailer: email and message are required")
	}
	// Header injection guard.
	if strings.ContainsAny(name, "\r\n") || strings.ContainsAny(email, "\r\n") {
		return fmt.Errorf("mailer: invalid characters in name or email")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.from)
	fmt.Fprintf(&b, "To: %s\r\n", m.to)
	fmt.Fprintf(&b, "Reply-To: %s\r\n", email)
	fmt.Fprintf(&b, "Subject: Wiadomość z formularza kontaktowego\r\n")
	fmt.Fprintf(&b, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "Imię: %s\r\nE-mail: %s\r\n\r\n%s\r\n", name, email, message)

	var auth smtp.Auth
	if m.user != "" {
		auth = smtp.PlainAuth("", m.user, m.pass, m.host)
	}

	addr := m.host + ":" + m.port
	if err := m.send(addr, auth, m.from, []string{m.to}, []byte(b.String())); err != nil {
		return fmt.Errorf("mailer send: %w", err)
	}
	return nil
}
