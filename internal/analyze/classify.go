package analyze

import (
	"fmt"
	"regexp"

	"github.com/zryth-solutions/papersplit/internal/home"
)

// Status tags recognized by the classifier.
const (
	TagSolved    = "SOLVED"
	TagUnsolved  = "UNSOLVED"
	TagSolutions = "SOLUTIONS"
)

var (
	selfAssessmentRe = regexp.MustCompile(`(?i)Self\s+Assessment\s+Paper[- ]?(\d+)`)
	practicePaperRe  = regexp.MustCompile(`(?i)Practice\s+Paper[- ]?(\d+)`)
	questionPaperRe  = regexp.MustCompile(`(?i)Question\s+Paper[- ]?(\d+)`)
)

// Classification is the output routing decision for a chapter.
type Classification struct {
	Filename string
	Folder   string
}

// Classify maps a (chapter name, tag) pair to its canonical output filename
// and folder. The second return is false for chapters with no routing rule;
// those stay in the analysis result but never produce an output file.
//
// The rules encode a fixed naming convention for a known exam-paper corpus:
// unsolved self assessment papers become SAP-N, unsolved practice papers
// become PP-N, and question papers become SQP-N with solutions routed to the
// answer key folder.
func Classify(chapterName, tag string) (Classification, bool) {
	if m := selfAssessmentRe.FindStringSubmatch(chapterName); m != nil && tag == TagUnsolved {
		return Classification{
			Filename: fmt.Sprintf("SAP-%s.pdf", m[1]),
			Folder:   home.QuestionPapersFolder,
		}, true
	}

	if m := practicePaperRe.FindStringSubmatch(chapterName); m != nil && tag == TagUnsolved {
		return Classification{
			Filename: fmt.Sprintf("PP-%s.pdf", m[1]),
			Folder:   home.QuestionPapersFolder,
		}, true
	}

	if m := questionPaperRe.FindStringSubmatch(chapterName); m != nil {
		switch tag {
		case TagSolved, TagUnsolved:
			return Classification{
				Filename: fmt.Sprintf("SQP-%s.pdf", m[1]),
				Folder:   home.QuestionPapersFolder,
			}, true
		case TagSolutions:
			return Classification{
				Filename: fmt.Sprintf("SQP-%s-SOLUTION.pdf", m[1]),
				Folder:   home.AnswerKeysFolder,
			}, true
		}
	}

	return Classification{}, false
}
