package llm

import (
	"strings"

	"cloud.google.com/go/civil"
)

// buildDraftPrompt renders the instruction prompt for one utterance. Dates in
// the rules and examples are computed from today so the model never has to
// do calendar arithmetic.
func buildDraftPrompt(text string, today civil.Date) string {
	r := strings.NewReplacer(
		"{today}", today.String(),
		"{yesterday}", today.AddDays(-1).String(),
		"{two_days_ago}", today.AddDays(-2).String(),
		"{text}", strings.TrimSpace(text),
	)
	return r.Replace(draftPromptTemplate)
}

const draftPromptTemplate = `TUGAS:
Klasifikasikan transaksi keuangan dari teks Bahasa Indonesia.

KELUARKAN HANYA JSON VALID.
JANGAN tambahkan penjelasan atau teks apapun selain JSON.

FORMAT WAJIB:
{"title":"...", "amount":number, "date":"YYYY-MM-DD", "category":"...", "type":"expense|income"}

ATURAN AMOUNT:
- WAJIB ambil amount dari teks
- 15rb/15ribu/15k -> amount=15000
- 1.5jt/1.5juta -> amount=1500000
- 10 juta -> amount=10000000
- Rp15.000 -> amount=15000

ATURAN TYPE:
- Kata: beli, membeli, bayar, belanja, makan, minum, bensin, kopi -> type="expense"
- Kata: gaji, terima, pendapatan, bonus, hasil, dapat, mendapatkan -> type="income"
- Default: type="expense"

ATURAN KATEGORI:
- Pilih salah satu: makan, minuman, transport, belanja, tagihan, hiburan, kesehatan, gaji, pendapatan, other
- kopi/teh/jus/minuman -> category="minuman"
- nasi/ayam/makan/sarapan -> category="makan"
- bensin/ojek/gojek/grab/taxi/bus -> category="transport"
- gaji/salary/penghasilan/pendapatan -> category="gaji"
- listrik/air/wifi/pulsa -> category="tagihan"
- Jika TIDAK COCOK -> category="other"

ATURAN TANGGAL:
- "hari ini" atau "today" -> date="{today}"
- "kemarin" atau "yesterday" -> date="{yesterday}"
- "2 hari lalu" -> date="{two_days_ago}"
- Jika TIDAK DISEBUT -> date="{today}"

CONTOH BENAR:

Input: beli kopi 15rb kemarin
Output:
{"title":"Beli kopi","amount":15000,"date":"{yesterday}","category":"minuman","type":"expense"}

Input: saya membeli kopi hari ini seharga Rp15.000
Output:
{"title":"Membeli kopi","amount":15000,"date":"{today}","category":"minuman","type":"expense"}

Input: bayar bensin 50rb
Output:
{"title":"Bayar bensin","amount":50000,"date":"{today}","category":"transport","type":"expense"}

Input: terima gaji 5jt hari ini
Output:
{"title":"Terima gaji","amount":5000000,"date":"{today}","category":"gaji","type":"income"}

Input: mendapatkan gaji 10 juta
Output:
{"title":"Mendapatkan gaji","amount":10000000,"date":"{today}","category":"gaji","type":"income"}

SEKARANG PROSES TEKS INI:
{text}

OUTPUT JSON:
`
