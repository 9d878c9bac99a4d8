package game

// Pool aggregates the drawable words per language. Each word carries a
// reference count: one per card occurrence across all registered users. A word
// leaves the pool only when its count reaches zero, so one user disconnecting
// never strips a word another user's card still needs.
type Pool struct {
	refs map[string]map[string]int // language -> word -> count
}

func NewPool(languages []string) *Pool {
	p := &Pool{refs: make(map[string]map[string]int, len(languages))}
	for _, lang := range languages {
		p.refs[lang] = make(map[string]int)
	}
	return p
}

// Add increments the word's reference count. Unsupported languages are
// ignored; such cards simply never get a round.
func (p *Pool) Add(language, word string) {
	words, ok := p.refs[language]
	if !ok {
		return
	}
	words[word]++
}

// Release undoes one Add, deleting the word once no card references it.
func (p *Pool) Release(language, word string) {
	words, ok := p.refs[language]
	if !ok {
		return
	}
	if n := words[word]; n > 1 {
		words[word] = n - 1
	} else {
		delete(words, word)
	}
}

func (p *Pool) Contains(language, word string) bool {
	_, ok := p.refs[language][word]
	return ok
}

// Words returns the distinct drawable words for a language, in no particular
// order.
func (p *Pool) Words(language string) []string {
	words := make([]string, 0, len(p.refs[language]))
	for w := range p.refs[language] {
		words = append(words, w)
	}
	return words
}

func (p *Pool) Size(language string) int {
	return len(p.refs[language])
}
