package knp

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/jp-nlp/ishi"
)

// Feature keys with dedicated fields on ishi.Chunk.
const (
	headFeature      = "主辞代表表記:"
	primeHeadFeature = "主辞’代表表記:"
	caseFeature      = "格解析結果:"
	repnameEntry     = "代表表記:"
)

var reFlag = regexp.MustCompile(`<([^>]+)>`)

// ParseTab reads KNP -tab output and returns the parsed sentences.
// Chunks are built at the tag ("+") level, the unit KNP annotates with
// predicate features and case analysis.
func ParseTab(r io.Reader) ([]*ishi.Sentence, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var sents []*ishi.Sentence
	cur := &ishi.Sentence{}

	for sc.Scan() {
		line := sc.Text()
		switch {
		case line == "EOS":
			if len(cur.Chunks) > 0 {
				sents = append(sents, cur)
			}
			cur = &ishi.Sentence{}
		case strings.HasPrefix(line, "# S-ID:"):
			id := strings.TrimPrefix(line, "# S-ID:")
			if i := strings.IndexByte(id, ' '); i >= 0 {
				id = id[:i]
			}
			cur.ID = id
		case strings.HasPrefix(line, "# "):
			// other comment lines are ignored
		case strings.HasPrefix(line, "* "):
			// bunsetsu lines carry no information the tag lines lack
		case strings.HasPrefix(line, "+ "):
			cur.Chunks = append(cur.Chunks, parseTagLine(line, cur))
		default:
			if len(cur.Chunks) == 0 {
				continue
			}
			if m, ok := parseMorphemeLine(line); ok {
				last := &cur.Chunks[len(cur.Chunks)-1]
				last.Morphemes = append(last.Morphemes, m)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(cur.Chunks) > 0 {
		sents = append(sents, cur)
	}
	return sents, nil
}

// parseTagLine builds a chunk from a "+" line, lifting the head repnames
// and the case analysis out of the feature flags.
func parseTagLine(line string, sent *ishi.Sentence) ishi.Chunk {
	ch := ishi.Chunk{
		SentenceID: sent.ID,
		Index:      len(sent.Chunks),
	}
	for _, m := range reFlag.FindAllStringSubmatch(line, -1) {
		flag := m[1]
		switch {
		case strings.HasPrefix(flag, primeHeadFeature):
			ch.PrimeHead = strings.TrimPrefix(flag, primeHeadFeature)
		case strings.HasPrefix(flag, headFeature):
			ch.Head = strings.TrimPrefix(flag, headFeature)
		case strings.HasPrefix(flag, caseFeature):
			ch.CaseFrame = parseCaseFrame(strings.TrimPrefix(flag, caseFeature), sent.ID)
		default:
			ch.Features = append(ch.Features, flag)
		}
	}
	return ch
}

// parseCaseFrame parses a 格解析結果 value:
//
//	<pred repname>:<frame id>:ガ/C/彼/0/0/1;ヲ/U/-/-/-/-;...
//
// Each slot is role/flag/surface/tagIndex/sentenceDistance/sentenceID.
// Unfilled slots (surface "-") are dropped; exophoric slots (flag E) keep
// only the surface; same-sentence slots become chunk references.
func parseCaseFrame(v, sentID string) map[string][]ishi.ArgRef {
	parts := strings.SplitN(v, ":", 3)
	if len(parts) < 3 {
		return nil
	}
	frame := make(map[string][]ishi.ArgRef)
	for _, slot := range strings.Split(parts[2], ";") {
		fields := strings.Split(slot, "/")
		if len(fields) < 4 {
			continue
		}
		role, flag, surface := fields[0], fields[1], fields[2]
		if surface == "-" || surface == "" {
			continue
		}
		if flag == "E" {
			frame[role] = append(frame[role], ishi.ArgRef{Surface: surface})
			continue
		}
		tid, err := strconv.Atoi(fields[3])
		if err != nil {
			continue
		}
		ref := ishi.ArgRef{SentenceID: sentID, ChunkIndex: tid}
		if len(fields) >= 6 && fields[4] != "0" {
			// reference into an earlier sentence
			ref.SentenceID = fields[5]
		}
		frame[role] = append(frame[role], ref)
	}
	if len(frame) == 0 {
		return nil
	}
	return frame
}

// parseMorphemeLine parses one Juman morpheme line:
//
//	surface reading lemma POS posID POSSub posSubID ... "semantic info" <...>
//
// Entries of the quoted semantic-info field become the repname and the
// semantic labels.
func parseMorphemeLine(line string) (ishi.Morpheme, bool) {
	// strip trailing <...> tags, then split off the quoted info
	if i := strings.Index(line, "<"); i >= 0 {
		line = line[:i]
	}
	var info string
	if i := strings.IndexByte(line, '"'); i >= 0 {
		if j := strings.LastIndexByte(line, '"'); j > i {
			info = line[i+1 : j]
		}
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) < 6 {
		return ishi.Morpheme{}, false
	}
	m := ishi.Morpheme{
		Surface: fields[0],
		Lemma:   fields[2],
		POS:     fields[3],
	}
	if fields[5] != "*" {
		m.POSSub = fields[5]
	}
	for _, entry := range strings.Fields(info) {
		if strings.HasPrefix(entry, repnameEntry) {
			m.Repname = strings.TrimPrefix(entry, repnameEntry)
			continue
		}
		m.Labels = append(m.Labels, normalizeLabel(entry))
	}
	return m, true
}

// normalizeLabel truncates semantic-info entries that carry the counterpart
// lemma as a payload (可能動詞:書く/かく, 自他動詞:他:温める/あたためる) to
// the bare marker the rule sets match on.
func normalizeLabel(entry string) string {
	switch {
	case strings.HasPrefix(entry, "可能動詞:"):
		return "可能動詞"
	case strings.HasPrefix(entry, "自他動詞:自:"):
		return "自他動詞:自"
	case strings.HasPrefix(entry, "自他動詞:他:"):
		return "自他動詞:他"
	}
	return entry
}
