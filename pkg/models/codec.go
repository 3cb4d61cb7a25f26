package models

import (
	jlexer "github.com/mailru/easyjson/jlexer"
	jwriter "github.com/mailru/easyjson/jwriter"
)

func decodeFloat64Slice(in *jlexer.Lexer, out []float64) []float64 {
	if in.IsNull() {
		in.Skip()
		return nil
	}
	in.Delim('[')
	if out == nil {
		if !in.IsDelim(']') {
			out = make([]float64, 0, 8)
		} else {
			out = []float64{}
		}
	} else {
		out = out[:0]
	}
	for !in.IsDelim(']') {
		out = append(out, float64(in.Float64()))
		in.WantComma()
	}
	in.Delim(']')
	return out
}

func decodeInt64Slice(in *jlexer.Lexer, out []int64) []int64 {
	if in.IsNull() {
		in.Skip()
		return nil
	}
	in.Delim('[')
	if out == nil {
		if !in.IsDelim(']') {
			out = make([]int64, 0, 8)
		} else {
			out = []int64{}
		}
	} else {
		out = out[:0]
	}
	for !in.IsDelim(']') {
		out = append(out, int64(in.Int64()))
		in.WantComma()
	}
	in.Delim(']')
	return out
}

func encodeFloat64Slice(out *jwriter.Writer, in []float64) {
	if in == nil && (out.Flags&jwriter.NilSliceAsEmpty) == 0 {
		out.RawString("null")
		return
	}
	out.RawByte('[')
	for i, v := range in {
		if i > 0 {
			out.RawByte(',')
		}
		out.Float64(v)
	}
	out.RawByte(']')
}

func encodeInt64Slice(out *jwriter.Writer, in []int64) {
	if in == nil && (out.Flags&jwriter.NilSliceAsEmpty) == 0 {
		out.RawString("null")
		return
	}
	out.RawByte('[')
	for i, v := range in {
		if i > 0 {
			out.RawByte(',')
		}
		out.Int64(v)
	}
	out.RawByte(']')
}

func decodeFloat64Ptr(in *jlexer.Lexer, out *float64) *float64 {
	if in.IsNull() {
		in.Skip()
		return nil
	}
	if out == nil {
		out = new(float64)
	}
	*out = float64(in.Float64())
	return out
}

func encodeFloat64Ptr(out *jwriter.Writer, in *float64) {
	if in == nil {
		out.RawString("null")
		return
	}
	out.Float64(*in)
}

// decodeQuoteField decodes key into the matching Quote field and reports whether key was known.
func decodeQuoteField(in *jlexer.Lexer, key string, out *Quote) bool {
	switch key {
	case "c":
		out.Current = decodeFloat64Ptr(in, out.Current)
	case "d":
		out.Change = decodeFloat64Ptr(in, out.Change)
	case "dp":
		out.PercentChange = decodeFloat64Ptr(in, out.PercentChange)
	case "h":
		out.High = decodeFloat64Ptr(in, out.High)
	case "l":
		out.Low = decodeFloat64Ptr(in, out.Low)
	case "o":
		out.Open = decodeFloat64Ptr(in, out.Open)
	case "pc":
		out.PreviousClose = decodeFloat64Ptr(in, out.PreviousClose)
	case "t":
		if in.IsNull() {
			in.Skip()
			out.Timestamp = nil
		} else {
			if out.Timestamp == nil {
				out.Timestamp = new(int64)
			}
			*out.Timestamp = int64(in.Int64())
		}
	default:
		return false
	}
	return true
}

// encodeQuoteFields writes the quote members without the surrounding braces.
func encodeQuoteFields(out *jwriter.Writer, in Quote) {
	out.RawString("\"c\":")
	encodeFloat64Ptr(out, in.Current)
	out.RawString(",\"d\":")
	encodeFloat64Ptr(out, in.Change)
	out.RawString(",\"dp\":")
	encodeFloat64Ptr(out, in.PercentChange)
	out.RawString(",\"h\":")
	encodeFloat64Ptr(out, in.High)
	out.RawString(",\"l\":")
	encodeFloat64Ptr(out, in.Low)
	out.RawString(",\"o\":")
	encodeFloat64Ptr(out, in.Open)
	out.RawString(",\"pc\":")
	encodeFloat64Ptr(out, in.PreviousClose)
	out.RawString(",\"t\":")
	if in.Timestamp == nil {
		out.RawString("null")
	} else {
		out.Int64(*in.Timestamp)
	}
}
