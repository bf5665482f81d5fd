package analyze

// ResolveRanges converts a page-sorted detection list into closed page
// ranges. Each chapter runs from its detection page to the page before the
// next detection, except that two detections on the same page produce a
// zero-width chapter (endPage == startPage) for the earlier one, and the
// final chapter runs to the last page of the document.
func ResolveRanges(detections []Detection, totalPages int) []Chapter {
	chapters := make([]Chapter, 0, len(detections))

	for i, det := range detections {
		startPage := det.Page
		endPage := totalPages

		if i+1 < len(detections) {
			nextPage := detections[i+1].Page
			if nextPage == startPage {
				endPage = startPage
			} else {
				endPage = nextPage - 1
			}
		}

		chapters = append(chapters, Chapter{
			ChapterName: det.Name,
			Tag:         det.Tag,
			StartPage:   startPage,
			EndPage:     endPage,
		})
	}

	return chapters
}
