package qr

// Messages holds the user-facing copy for one locale.
type Messages struct {
	Dir             string
	Company         string
	Title           string
	Subtitle        string
	Placeholder     string
	ColorLabel      string
	DownloadButton  string
	InvalidURL      string
	DownloadSuccess string
	ExportFailed    string
	ContactLabel    string
	Footer          string
}

var catalog = map[string]Messages{
	"ar": {
		Dir:             "rtl",
		Company:         "شركة جرين لايت لتكنولوجيا والتطوير",
		Title:           "مولد الباركود",
		Subtitle:        "قم بإنشاء باركود خاص بك في ثوانٍ معدودة",
		Placeholder:     "أدخل الرابط هنا...",
		ColorLabel:      "لون الباركود:",
		DownloadButton:  "تحميل الباركود",
		InvalidURL:      "الرجاء إدخال رابط صحيح",
		DownloadSuccess: "تم تحميل الباركود بنجاح",
		ExportFailed:    "تعذر تحميل الباركود، حاول مرة أخرى",
		ContactLabel:    "تواصل معنا عبر واتساب",
		Footer:          "جميع الحقوق محفوظة",
	},
	"en": {
		Dir:             "ltr",
		Company:         "Green Light Technology & Development",
		Title:           "QR Code Generator",
		Subtitle:        "Create your own QR code in seconds",
		Placeholder:     "Enter the link here...",
		ColorLabel:      "QR color:",
		DownloadButton:  "Download QR code",
		InvalidURL:      "Please enter a valid URL",
		DownloadSuccess: "QR code downloaded successfully",
		ExportFailed:    "Could not download the QR code, please try again",
		ContactLabel:    "Contact us on WhatsApp",
		Footer:          "All rights reserved",
	},
}

const DefaultLocale = "ar"

// MessagesFor returns the catalog for locale, falling back to Arabic.
func MessagesFor(locale string) Messages {
	if m, ok := catalog[locale]; ok {
		return m
	}
	return catalog[DefaultLocale]
}

// Locales lists the supported catalog keys.
func Locales() []string {
	return []string{"ar", "en"}
}
