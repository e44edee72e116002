package smartfill

// Phase labels in the order they are surfaced
var phaseLabels = [...]string{
	"Uploading document securely...",
	"Scanning document structure (OCR)...",
	"Identifying form fields...",
	"Querying Knowledge Base (Neo4j)...",
	"Mapping entities to fields...",
	"Applying Smart-Fill logic...",
}

// Thresholds at which each phase ends. The last marks completion.
var thresholds = [...]int{15, 35, 55, 75, 90, 100}

// PhaseCount is the number of phases
const PhaseCount = len(phaseLabels)

// PhaseFor returns the phase index for a progress value: the number of the
// first five thresholds already reached.
func PhaseFor(progress int) int {
	phase := 0
	for _, t := range thresholds[:PhaseCount-1] {
		if progress >= t {
			phase++
		}
	}
	return phase
}

// Label returns the phase label for a progress value
func Label(progress int) string {
	return phaseLabels[PhaseFor(progress)]
}

// Labels returns every phase label in order
func Labels() []string {
	return append([]string(nil), phaseLabels[:]...)
}
