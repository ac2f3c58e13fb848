// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package match

import "math"

// Elo returns the likely elo difference between PlayerA and PlayerB given
// the score, along with its p < 0.05 lower and upper bounds, called muMin,
// mu, and muMax respectively.
func (score Score) Elo() (muMin float64, mu float64, muMax float64) {
	N := float64(score.Games()) // total number of games

	if N == 0 {
		return 0, 0, 0
	}

	w := float64(score.Wins) / N   // measured win probability
	d := float64(score.Draws) / N  // measured draw probability
	l := float64(score.Losses) / N // measured loss probability

	// empirical mean of random variable
	mu = w + d/2

	// standard deviation of the random variable
	sigma := math.Sqrt(w*math.Pow(1-mu, 2)+d*math.Pow(0.5-mu, 2)+l*math.Pow(0-mu, 2)) / math.Sqrt(N)

	muMax = mu + phiInv(0.975)*sigma // upper bound
	muMin = mu + phiInv(0.025)*sigma // lower bound

	return scoreToElo(muMin), scoreToElo(mu), scoreToElo(muMax)
}

// scoreToElo converts an expected score to an elo difference. Scores at
// or beyond 0 and 1 have no finite elo and are reported as -Inf and +Inf.
func scoreToElo(x float64) float64 {
	switch {
	case x <= 0:
		return math.Inf(-1)
	case x >= 1:
		return math.Inf(+1)

	default:
		return 400 * math.Log10(x/(1-x))
	}
}

func phiInv(p float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*p-1)
}
