package catalog

import (
	"github.com/hitoshi/civicpulse/internal/model"
	"github.com/hitoshi/civicpulse/internal/security"
)

// educationContent は教育コンテンツの静的カタログ。
// Contentの提供はSanitized*系のアクセサを経由すること。
var educationContent = []model.EducationContent{
	{
		ID:          "edu1",
		Title:       "Proper Handwashing Technique",
		Description: "Learn the correct way to wash your hands to prevent the spread of disease.",
		ImageURL:    "https://images.pexels.com/photos/6969866/pexels-photo-6969866.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		Category:    model.EducationCategoryHygiene,
		Content: `<h2>Why Handwashing is Important</h2>
<p>Regular handwashing is one of the best ways to remove germs, avoid getting sick, and prevent the spread of germs to others.</p>
<h3>When to Wash Your Hands</h3>
<ul>
<li>Before, during, and after preparing food</li>
<li>Before eating</li>
<li>Before and after caring for someone who is sick</li>
<li>After using the toilet</li>
<li>After blowing your nose, coughing, or sneezing</li>
<li>After touching garbage</li>
</ul>
<h3>Five Steps to Wash Your Hands the Right Way</h3>
<ol>
<li>Wet your hands with clean, running water, turn off the tap, and apply soap.</li>
<li>Lather your hands by rubbing them together with the soap.</li>
<li>Scrub your hands for at least 20 seconds.</li>
<li>Rinse your hands well under clean, running water.</li>
<li>Dry your hands using a clean towel or air dry them.</li>
</ol>`,
		VideoURL: "https://www.youtube.com/embed/3PmVJQUCm4E",
	},
	{
		ID:          "edu2",
		Title:       "Responsible Waste Disposal",
		Description: "Learn how to properly sort and dispose of different types of waste.",
		ImageURL:    "https://images.pexels.com/photos/6963591/pexels-photo-6963591.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		Category:    model.EducationCategoryWaste,
		Content: `<h2>Waste Sorting Guide</h2>
<p>Proper waste sorting is essential for effective recycling and waste management. By following these guidelines, you can help reduce landfill waste and protect the environment.</p>
<h3>Recyclables</h3>
<p>These items go in your blue bin:</p>
<ul>
<li>Paper and cardboard (clean and dry)</li>
<li>Glass bottles and jars (empty and rinsed)</li>
<li>Metal cans (empty and rinsed)</li>
<li>Plastic bottles and containers with recycling symbols #1-5 and #7</li>
</ul>
<h3>Compostables</h3>
<p>These items go in your green bin:</p>
<ul>
<li>Food scraps and leftovers</li>
<li>Coffee grounds and filters</li>
<li>Yard trimmings</li>
</ul>`,
	},
	{
		ID:          "edu3",
		Title:       "Menstrual Health and Hygiene",
		Description: "Essential information about menstrual hygiene and where to find free products.",
		ImageURL:    "https://images.pexels.com/photos/5938360/pexels-photo-5938360.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		Category:    model.EducationCategoryMenstrual,
		Content: `<h2>Access to Menstrual Products</h2>
<p>Menstrual products are a basic necessity. Free dispensers are available at public libraries, community centers, and city facilities across San Jose.</p>
<h3>Hygiene Basics</h3>
<ul>
<li>Change products every 4 to 8 hours</li>
<li>Wash your hands before and during product changes</li>
<li>Dispose of used products in the provided bins, never in toilets</li>
</ul>`,
	},
}

// EducationEntries は全教育コンテンツのコピーを返す。
func EducationEntries() []model.EducationContent {
	out := make([]model.EducationContent, len(educationContent))
	copy(out, educationContent)
	return out
}

// EducationByID は指定IDの教育コンテンツを返す。見つからない場合はnilを返す。
func EducationByID(id string) *model.EducationContent {
	for i := range educationContent {
		if educationContent[i].ID == id {
			e := educationContent[i]
			return &e
		}
	}
	return nil
}

// EducationByCategory は指定カテゴリの教育コンテンツ一覧を返す。
func EducationByCategory(category model.EducationCategory) []model.EducationContent {
	var out []model.EducationContent
	for _, e := range educationContent {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

// SanitizedEducationEntries は全教育コンテンツをHTML本文のサニタイズ込みで返す。
// 表示用の読み取りパスはこちらを使用すること。
func SanitizedEducationEntries(s security.ContentSanitizerService) []model.EducationContent {
	out := EducationEntries()
	for i := range out {
		out[i].Content = s.SanitizeHTML(out[i].Content)
	}
	return out
}

// SanitizedEducationByID は指定IDの教育コンテンツをサニタイズ済み本文で返す。
// 見つからない場合はnilを返す。
func SanitizedEducationByID(s security.ContentSanitizerService, id string) *model.EducationContent {
	e := EducationByID(id)
	if e == nil {
		return nil
	}
	e.Content = s.SanitizeHTML(e.Content)
	return e
}
