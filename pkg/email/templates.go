package email

import (
	"fmt"
)

// RequestEmailData contains the data needed for medical request email templates.
type RequestEmailData struct {
	FirstName    string
	Email        string
	RequestTitle string
	RequestType  string // prescription, lab_result, imaging
	ProviderName string
	Feedback     string
	AppName      string
	BaseURL      string
}

func (d RequestEmailData) appName() string {
	if d.AppName == "" {
		return "SehatyNet"
	}
	return d.AppName
}

func (d RequestEmailData) firstName() string {
	if d.FirstName == "" {
		return "there"
	}
	return d.FirstName
}

// BuildRequestReadyEmail tells the patient their order is ready for pickup.
func BuildRequestReadyEmail(data RequestEmailData) Message {
	appName := data.appName()
	firstName := data.firstName()

	subject := fmt.Sprintf("Your request is ready for pickup | %s", appName)

	textBody := fmt.Sprintf(`Hi %s,

Good news! Your request "%s" has been prepared by %s and is ready for pickup.

Please bring a valid ID when collecting your order.

Thanks,
The %s Team`,
		firstName, data.RequestTitle, data.ProviderName, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #16a34a;">Hi %s,</h2>
    <p>Good news! Your request <strong>%s</strong> has been prepared by %s and is ready for pickup.</p>
    <p style="color: #6b7280; font-size: 14px;">Please bring a valid ID when collecting your order.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		firstName, data.RequestTitle, data.ProviderName, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildPartialOfferEmail asks the patient to confirm a partial fulfillment offer.
func BuildPartialOfferEmail(data RequestEmailData) Message {
	appName := data.appName()
	firstName := data.firstName()

	subject := fmt.Sprintf("Action needed: some items are unavailable | %s", appName)

	textBody := fmt.Sprintf(`Hi %s,

%s reviewed your request "%s" and could not fulfill every item.

Provider note: %s

Please open the app to accept the available items, keep waiting, or move your request to another provider.

Thanks,
The %s Team`,
		firstName, data.ProviderName, data.RequestTitle, data.Feedback, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #d97706;">Hi %s,</h2>
    <p>%s reviewed your request <strong>%s</strong> and could not fulfill every item.</p>
    <p style="background-color: #fef3c7; padding: 10px 15px; border-radius: 4px;">%s</p>
    <p>Please open the app to accept the available items, keep waiting, or move your request to another provider.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		firstName, data.ProviderName, data.RequestTitle, data.Feedback, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildOutOfStockEmail tells the patient nothing in their request was available.
func BuildOutOfStockEmail(data RequestEmailData) Message {
	appName := data.appName()
	firstName := data.firstName()

	subject := fmt.Sprintf("Your request could not be fulfilled | %s", appName)

	textBody := fmt.Sprintf(`Hi %s,

Unfortunately %s could not fulfill any item of your request "%s".

Provider note: %s

You can move the request to another provider from the app.

Thanks,
The %s Team`,
		firstName, data.ProviderName, data.RequestTitle, data.Feedback, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #dc2626;">Hi %s,</h2>
    <p>Unfortunately %s could not fulfill any item of your request <strong>%s</strong>.</p>
    <p style="background-color: #fee2e2; padding: 10px 15px; border-radius: 4px;">%s</p>
    <p>You can move the request to another provider from the app.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		firstName, data.ProviderName, data.RequestTitle, data.Feedback, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildRequestCompletedEmail confirms collection (and, for lab/imaging, that
// results are available for download).
func BuildRequestCompletedEmail(data RequestEmailData) Message {
	appName := data.appName()
	firstName := data.firstName()

	subject := fmt.Sprintf("Your request is complete | %s", appName)

	resultsLine := ""
	if data.RequestType == "lab_result" || data.RequestType == "imaging" {
		resultsLine = "Your results are now available for download in the app."
	}

	textBody := fmt.Sprintf(`Hi %s,

Your request "%s" has been completed by %s.

%s

Thanks,
The %s Team`,
		firstName, data.RequestTitle, data.ProviderName, resultsLine, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #16a34a;">Hi %s,</h2>
    <p>Your request <strong>%s</strong> has been completed by %s.</p>
    <p>%s</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		firstName, data.RequestTitle, data.ProviderName, resultsLine, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildOTPEmail creates an OTP verification email message.
// language: "en" for English or "fr" for French
func BuildOTPEmail(email string, code string, language string, expiryMinutes int) Message {
	const appName = "SehatyNet"

	var subject, greeting, line1, line2, line3, codeLabel, expires, closing string

	if language == "fr" {
		subject = "Votre code de vérification | Your Verification Code"
		greeting = "Bonjour,"
		line1 = "Une demande de vérification de votre identité pour accéder à SehatyNet a été reçue."
		line2 = "Veuillez utiliser le code ci-dessous pour vérifier votre identité :"
		line3 = "Si vous n'êtes pas à l'origine de cette demande, veuillez ignorer cet e-mail."
		codeLabel = "Code de vérification :"
		expires = fmt.Sprintf("Ce code est valable pendant %d minutes.", expiryMinutes)
		closing = "L'équipe SehatyNet"
	} else {
		subject = "Your Verification Code | Votre code de vérification"
		greeting = "Hi,"
		line1 = "You've requested to verify your identity for accessing SehatyNet."
		line2 = "Please use the code below to verify your identity:"
		line3 = "If you didn't request this, please ignore this email."
		codeLabel = "Verification Code:"
		expires = fmt.Sprintf("This code is valid for %d minutes.", expiryMinutes)
		closing = "The SehatyNet Team"
	}

	textBody := fmt.Sprintf(`%s

%s

%s

%s

%s

%s

%s

%s`, greeting, line1, line2, codeLabel, code, expires, line3, closing)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">%s</h2>
    <p>%s</p>
    <p>%s</p>
    <p style="text-align: center; margin: 30px 0; background-color: #f3f4f6; padding: 20px; border-radius: 6px;">
        <span style="font-size: 12px; color: #6b7280;">%s</span><br>
        <span style="font-size: 36px; font-weight: bold; font-family: monospace; color: #000; letter-spacing: 4px;">%s</span>
    </p>
    <p style="color: #ef4444; font-size: 14px; text-align: center;">%s</p>
    <p>%s</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px; border-top: 1px solid #e5e7eb; padding-top: 20px;">
        %s
    </p>
</body>
</html>`, greeting, line1, line2, codeLabel, code, expires, line3, closing)

	return Message{
		To:       []string{email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
