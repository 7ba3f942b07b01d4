package attribution

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect_KnownPlatforms(t *testing.T) {
	tests := []struct {
		name     string
		hint     string
		referrer string
		want     string
	}{
		{"instagram referrer", "", "https://www.instagram.com/", "instagram"},
		{"instagram app link", "", "https://l.instagram.com/?u=abc", "instagram"},
		{"facebook referrer", "", "https://www.facebook.com/profile", "facebook"},
		{"fb short domain", "", "https://fb.me/xyz", "facebook"},
		{"fb.com domain", "", "http://m.fb.com/", "facebook"},
		{"twitter referrer", "", "https://twitter.com/user/status/1", "twitter"},
		{"t.co shortener", "", "https://t.co/abc123", "twitter"},
		{"x.com domain", "", "https://x.com/user", "twitter"},
		{"whatsapp referrer", "", "https://web.whatsapp.com/", "whatsapp"},
		{"wa.me link", "", "https://wa.me/15551234567", "whatsapp"},
		{"youtube referrer", "", "https://www.youtube.com/watch?v=1", "youtube"},
		{"youtu.be shortener", "", "https://youtu.be/dQw4w9WgXcQ", "youtube"},
		{"linkedin referrer", "", "https://www.linkedin.com/in/someone", "linkedin"},
		{"tiktok referrer", "", "https://www.tiktok.com/@user", "tiktok"},
		// "snapchat.com" contains "t.co", so the earlier twitter rule wins.
		{"snapchat web referrer", "", "https://www.snapchat.com/add/user", "twitter"},
		{"snapchat hint", "snapchat", "", "snapchat"},
		{"snapchat app referrer", "", "snapchat://story", "snapchat"},
		{"pinterest referrer", "", "https://pin.it/ via pinterest", "pinterest"},
		{"uppercase referrer", "", "HTTPS://WWW.INSTAGRAM.COM/", "instagram"},
		{"keyword buried in text", "", "android-app://com.instagram.android", "instagram"},
		{"hint instead of referrer", "instagram.com", "", "instagram"},
		{"mixed case hint", "TikTok", "", "tiktok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.hint, tt.referrer))
		})
	}
}

func TestDetect_HintTakesPrecedence(t *testing.T) {
	// Explicit hint wins even when the referrer names another platform.
	assert.Equal(t, "twitter", Detect("t.co", "https://www.instagram.com/"))
	// Empty hint falls back to the referrer.
	assert.Equal(t, "instagram", Detect("", "https://www.instagram.com/"))
}

func TestDetect_Direct(t *testing.T) {
	assert.Equal(t, SourceDirect, Detect("", ""))
}

func TestDetect_Other(t *testing.T) {
	assert.Equal(t, SourceOther, Detect("", "https://example.com/blog"))
	assert.Equal(t, SourceOther, Detect("newsletter", ""))
	assert.Equal(t, SourceOther, Detect("", "https://duckduckgo.com/"))
}

func TestDetect_RuleOrder(t *testing.T) {
	// Text matching multiple rules resolves to the first rule in order.
	assert.Equal(t, "instagram", Detect("", "facebook.com/share?next=instagram.com"))
	assert.Equal(t, "facebook", Detect("", "facebook.com/share?next=t.co"))
}
