package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const mailchimpEmbed = `<link href="//cdn-images.mailchimp.com/embedcode/classic-10_7.css" rel="stylesheet" type="text/css">` +
	`<div id="mc_embed_signup"><form action="https://example.us1.list-manage.com/subscribe/post" method="post" id="mc-embedded-subscribe-form" name="mc-embedded-subscribe-form">` +
	`<div id="mc_embed_signup_scroll"><h2>Subscribe</h2>` +
	`<div class="mc-field-group"><label for="mce-EMAIL">Email Address</label><input type="email" name="EMAIL" id="mce-EMAIL"></div>` +
	`<div style="position: absolute; left: -5000px;" aria-hidden="true"><input type="text" name="b_123_456" tabindex="-1" value=""></div>` +
	`<div class="clear"><input type="submit" value="Subscribe" name="subscribe" id="mc-embedded-subscribe" class="button"></div>` +
	`</div></form></div>` +
	`<script type="text/javascript" src="//s3.amazonaws.com/downloads.mailchimp.com/js/mc-validate.js"></script>`

func TestSanitizeContent(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "removes scripts",
			input: `<p>Text</p><script>alert("x")</script><SCRIPT src="a.js"></SCRIPT>`,
			want:  `<p>Text</p>`,
		},
		{
			name:  "removes stray script tags",
			input: `<p>A</p><script src="x.js">`,
			want:  `<p>A</p>`,
		},
		{
			name:  "removes full mailchimp embed",
			input: "<p>Intro</p>\n" + mailchimpEmbed + "\n<p>Outro</p>",
			want:  "<p>Intro</p>\n\n<p>Outro</p>",
		},
		{
			name:  "removes named subscribe form outside container",
			input: `<form id="mc-embedded-subscribe-form"><div><input type="email"></div></form><p>Body</p>`,
			want:  `<p>Body</p>`,
		},
		{
			name:  "removes subscribe inputs",
			input: `<p>Body</p><input type="submit" value="Subscribe"><input id="mc-embedded-subscribe" type="submit">`,
			want:  `<p>Body</p>`,
		},
		{
			name:  "removes generic embed divs with nested markup",
			input: `<div class="w-embed w-script"><div><iframe src="https://x"></iframe></div></div><p>Keep</p>`,
			want:  `<p>Keep</p>`,
		},
		{
			name:  "removes data-embed divs",
			input: `<div data-embed="newsletter"><span>Widget</span></div><p>Keep</p>`,
			want:  `<p>Keep</p>`,
		},
		{
			name:  "keeps divs whose class merely contains embed as a substring",
			input: `<div class="embedded-quote"><p>Quote</p></div>`,
			want:  `<div class="embedded-quote"><p>Quote</p></div>`,
		},
		{
			name:  "unwraps leftover forms",
			input: `<form action="/search"><p>Keep</p></form>`,
			want:  `<p>Keep</p>`,
		},
		{
			name:  "removes email capture placeholders",
			input: `<div class="hint">Enter your email address</div><div>E-posta adresiniz</div><p>Body</p>`,
			want:  `<p>Body</p>`,
		},
		{
			name:  "collapses nested empty blocks",
			input: `<p> </p><p>&nbsp;</p><div><div> </div></div><p>Text</p>`,
			want:  `<p>Text</p>`,
		},
		{
			name:  "normalizes whitespace",
			input: "  <p>a  \t b</p>\r\n\r\n\n \n<p>c</p>  ",
			want:  "<p>a b</p>\n\n<p>c</p>",
		},
		{
			name:  "drops unbalanced container opening tag only",
			input: `<div id="mc_embed_signup"><p>Text</p>`,
			want:  `<p>Text</p>`,
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeContent(tt.input))
		})
	}
}

func TestSanitizeContent_Idempotent(t *testing.T) {
	inputs := []string{
		"<p>Intro</p>\n" + mailchimpEmbed + "\n<p>Outro</p>",
		"<div><div><p> </p></div></div>\n\n\n<p>x</p>",
		"<div class=\"w-embed\"><div class=\"w-embed\"></div></div>  text \t\n\n\n more",
		"<p>plain</p>",
		"<p>one</p> \n \n <p>two</p>",
		"<p>x</p>" + strings.Repeat("<fo", 10) + "<form>" + strings.Repeat("rm>", 10),
	}
	for _, in := range inputs {
		once := SanitizeContent(in)
		assert.Equal(t, once, SanitizeContent(once), "input: %q", in)
		assert.Equal(t, once, SanitizeContent(in), "repeated calls must match")
	}
}

func TestSanitizeContent_RejoinedFormTags(t *testing.T) {
	in := "<p>x</p>" + strings.Repeat("<fo", 10) + "<form>" + strings.Repeat("rm>", 10)
	assert.Equal(t, "<p>x</p>", SanitizeContent(in))
}
