package models

import "testing"

func TestQuoteResponse_Decode(t *testing.T) {
	var resp QuoteResponse
	data := []byte(`{"c":105.5,"d":null,"pc":100,"t":1700000000,"extra":{"x":[1,2]},` +
		`"candles":{"t":[1,2],"c":[3,4.5]},"historical":[1,2,3]}`)
	if err := resp.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON failed: %v", err)
	}

	if resp.Current == nil || *resp.Current != 105.5 {
		t.Errorf("Current = %v, want 105.5", resp.Current)
	}
	if resp.Change != nil {
		t.Errorf("Change = %v, want nil", *resp.Change)
	}
	if resp.PreviousClose == nil || *resp.PreviousClose != 100 {
		t.Errorf("PreviousClose = %v, want 100", resp.PreviousClose)
	}
	if resp.Timestamp == nil || *resp.Timestamp != 1700000000 {
		t.Errorf("Timestamp = %v", resp.Timestamp)
	}
	if resp.Candles == nil || len(resp.Candles.Closes) != 2 || resp.Candles.Closes[1] != 4.5 {
		t.Errorf("Candles = %+v", resp.Candles)
	}
	if len(resp.Historical) != 3 {
		t.Errorf("Historical = %v", resp.Historical)
	}
}

func TestQuoteResponse_Encode(t *testing.T) {
	c, pc := 105.0, 100.0

	tests := []struct {
		name string
		resp QuoteResponse
		want string
	}{
		{
			name: "absent fields are null, candles omitted",
			resp: QuoteResponse{Quote: Quote{Current: &c, PreviousClose: &pc}},
			want: `{"c":105,"d":null,"dp":null,"h":null,"l":null,"o":null,"pc":100,"t":null}`,
		},
		{
			name: "candles",
			resp: QuoteResponse{Candles: &CandleSeries{Timestamps: []int64{1}, Closes: []float64{2.5}}},
			want: `{"c":null,"d":null,"dp":null,"h":null,"l":null,"o":null,"pc":null,"t":null,"candles":{"t":[1],"c":[2.5]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.resp.MarshalJSON()
			if err != nil {
				t.Fatalf("MarshalJSON failed: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("got  %s\nwant %s", got, tt.want)
			}
		})
	}
}

func TestUpstreamCandles_OK(t *testing.T) {
	tests := []struct {
		name string
		body string
		ok   bool
	}{
		{name: "healthy", body: `{"c":[1,2],"t":[10,20],"s":"ok"}`, ok: true},
		{name: "no data", body: `{"s":"no_data"}`, ok: false},
		{name: "missing status", body: `{"c":[1],"t":[10]}`, ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c UpstreamCandles
			if err := c.UnmarshalJSON([]byte(tt.body)); err != nil {
				t.Fatalf("UnmarshalJSON failed: %v", err)
			}
			if c.OK() != tt.ok {
				t.Errorf("OK = %v, want %v", c.OK(), tt.ok)
			}
			if tt.ok {
				s := c.Series()
				if len(s.Closes) != 2 || s.Timestamps[1] != 20 {
					t.Errorf("Series = %+v", s)
				}
			}
		})
	}
}

func TestErrorResponse_Encode(t *testing.T) {
	body := `{"error":"Invalid API key"}`
	got, err := ErrorResponse{Error: "Finnhub quote error", Status: 401, Body: &body}.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}
	want := `{"error":"Finnhub quote error","status":401,"body":"{\"error\":\"Invalid API key\"}"}`
	if string(got) != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}
