//Package models easyjson codecs
//CODE GENERATED AUTOMATICALLY
//THIS FILE COULD BE EDITED BY HANDS

package models

import (
	json "encoding/json"

	easyjson "github.com/mailru/easyjson"
	jlexer "github.com/mailru/easyjson/jlexer"
	jwriter "github.com/mailru/easyjson/jwriter"
)

// suppress unused package warning
var (
	_ *json.RawMessage
	_ *jlexer.Lexer
	_ *jwriter.Writer
	_ easyjson.Marshaler
)

func easyjson3e1fa5ecDecodeGithubComMarketpanelPkgModels(in *jlexer.Lexer, out *UpstreamCandles) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		if isTopLevel {
			in.Consumed()
		}
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "c":
			out.Closes = decodeFloat64Slice(in, out.Closes)
		case "h":
			out.Highs = decodeFloat64Slice(in, out.Highs)
		case "l":
			out.Lows = decodeFloat64Slice(in, out.Lows)
		case "o":
			out.Opens = decodeFloat64Slice(in, out.Opens)
		case "v":
			out.Volumes = decodeFloat64Slice(in, out.Volumes)
		case "t":
			out.Timestamps = decodeInt64Slice(in, out.Timestamps)
		case "s":
			out.Status = string(in.String())
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}
func easyjson3e1fa5ecEncodeGithubComMarketpanelPkgModels(out *jwriter.Writer, in UpstreamCandles) {
	out.RawByte('{')
	first := true
	_ = first
	{
		const prefix string = ",\"c\":"
		out.RawString(prefix[1:])
		encodeFloat64Slice(out, in.Closes)
	}
	{
		const prefix string = ",\"h\":"
		out.RawString(prefix)
		encodeFloat64Slice(out, in.Highs)
	}
	{
		const prefix string = ",\"l\":"
		out.RawString(prefix)
		encodeFloat64Slice(out, in.Lows)
	}
	{
		const prefix string = ",\"o\":"
		out.RawString(prefix)
		encodeFloat64Slice(out, in.Opens)
	}
	{
		const prefix string = ",\"v\":"
		out.RawString(prefix)
		encodeFloat64Slice(out, in.Volumes)
	}
	{
		const prefix string = ",\"t\":"
		out.RawString(prefix)
		encodeInt64Slice(out, in.Timestamps)
	}
	{
		const prefix string = ",\"s\":"
		out.RawString(prefix)
		out.String(string(in.Status))
	}
	out.RawByte('}')
}

// MarshalJSON supports json.Marshaler interface
func (v UpstreamCandles) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	easyjson3e1fa5ecEncodeGithubComMarketpanelPkgModels(&w, v)
	return w.Buffer.BuildBytes(), w.Error
}

// MarshalEasyJSON supports easyjson.Marshaler interface
func (v UpstreamCandles) MarshalEasyJSON(w *jwriter.Writer) {
	easyjson3e1fa5ecEncodeGithubComMarketpanelPkgModels(w, v)
}

// UnmarshalJSON supports json.Unmarshaler interface
func (v *UpstreamCandles) UnmarshalJSON(data []byte) error {
	r := jlexer.Lexer{Data: data}
	easyjson3e1fa5ecDecodeGithubComMarketpanelPkgModels(&r, v)
	return r.Error()
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface
func (v *UpstreamCandles) UnmarshalEasyJSON(l *jlexer.Lexer) {
	easyjson3e1fa5ecDecodeGithubComMarketpanelPkgModels(l, v)
}
func easyjson3e1fa5ecDecodeGithubComMarketpanelPkgModels1(in *jlexer.Lexer, out *Quote) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		if isTopLevel {
			in.Consumed()
		}
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		if !decodeQuoteField(in, key, out) {
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}
func easyjson3e1fa5ecEncodeGithubComMarketpanelPkgModels1(out *jwriter.Writer, in Quote) {
	out.RawByte('{')
	encodeQuoteFields(out, in)
	out.RawByte('}')
}

// MarshalJSON supports json.Marshaler interface
func (v Quote) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	easyjson3e1fa5ecEncodeGithubComMarketpanelPkgModels1(&w, v)
	return w.Buffer.BuildBytes(), w.Error
}

// MarshalEasyJSON supports easyjson.Marshaler interface
func (v Quote) MarshalEasyJSON(w *jwriter.Writer) {
	easyjson3e1fa5ecEncodeGithubComMarketpanelPkgModels1(w, v)
}

// UnmarshalJSON supports json.Unmarshaler interface
func (v *Quote) UnmarshalJSON(data []byte) error {
	r := jlexer.Lexer{Data: data}
	easyjson3e1fa5ecDecodeGithubComMarketpanelPkgModels1(&r, v)
	return r.Error()
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface
func (v *Quote) UnmarshalEasyJSON(l *jlexer.Lexer) {
	easyjson3e1fa5ecDecodeGithubComMarketpanelPkgModels1(l, v)
}
func easyjson3e1fa5ecDecodeGithubComMarketpanelPkgModels2(in *jlexer.Lexer, out *CandleSeries) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		if isTopLevel {
			in.Consumed()
		}
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "t":
			out.Timestamps = decodeInt64Slice(in, out.Timestamps)
		case "c":
			out.Closes = decodeFloat64Slice(in, out.Closes)
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}
func easyjson3e1fa5ecEncodeGithubComMarketpanelPkgModels2(out *jwriter.Writer, in CandleSeries) {
	out.RawByte('{')
	first := true
	_ = first
	{
		const prefix string = ",\"t\":"
		out.RawString(prefix[1:])
		encodeInt64Slice(out, in.Timestamps)
	}
	{
		const prefix string = ",\"c\":"
		out.RawString(prefix)
		encodeFloat64Slice(out, in.Closes)
	}
	out.RawByte('}')
}

// MarshalJSON supports json.Marshaler interface
func (v CandleSeries) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	easyjson3e1fa5ecEncodeGithubComMarketpanelPkgModels2(&w, v)
	return w.Buffer.BuildBytes(), w.Error
}

// MarshalEasyJSON supports easyjson.Marshaler interface
func (v CandleSeries) MarshalEasyJSON(w *jwriter.Writer) {
	easyjson3e1fa5ecEncodeGithubComMarketpanelPkgModels2(w, v)
}

// UnmarshalJSON supports json.Unmarshaler interface
func (v *CandleSeries) UnmarshalJSON(data []byte) error {
	r := jlexer.Lexer{Data: data}
	easyjson3e1fa5ecDecodeGithubComMarketpanelPkgModels2(&r, v)
	return r.Error()
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface
func (v *CandleSeries) UnmarshalEasyJSON(l *jlexer.Lexer) {
	easyjson3e1fa5ecDecodeGithubComMarketpanelPkgModels2(l, v)
}
