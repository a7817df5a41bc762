package i18n

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

// Message keys shared by the renderers. English copy doubles as the key.
const (
	MsgStarts               = "Starts"
	MsgEnds                 = "Ends"
	MsgEnded                = "Ended"
	MsgThreshold            = "Threshold"
	MsgCurrentThreshold     = "Current Threshold"
	MsgVotesCount           = "%d votes"
	MsgSnapshot             = "Snapshot"
	MsgTakenAtBlock         = "Taken at block"
	MsgProposerFunctions    = "Proposer functions"
	MsgEditableFor          = "This proposal can be edited for the next %s"
	MsgCancelableFor        = "This proposal can be canceled for the next %s"
	MsgOnlyVisibleToYou     = "Only visible to you"
	MsgWithdrawFromStream   = "Withdraw from Stream %s"
	MsgSwitchToNounView     = "Switch to Noun view"
	MsgSwitchToDelegateView = "Switch to delegate view"
	MsgFailedToFetch        = "Failed to fetch"
	MsgSuccess              = "Success"
	MsgTransactionSucceeded = "Transaction Successful!"
	MsgTransactionFailed    = "Transaction Failed"
	MsgPleaseTryAgain       = "Please try again."
	MsgError                = "Error"
	MsgProposalQueued       = "Proposal Queued!"
	MsgProposalExecuted     = "Proposal Executed!"
	MsgProposalCanceled     = "Proposal Canceled!"
	MsgVoteSubmitted        = "Vote Submitted!"
	MsgWithdrawalSubmitted  = "Withdrawal Submitted!"
	MsgFor                  = "For"
	MsgAgainst              = "Against"
	MsgAbstain              = "Abstain"
	MsgProposalHeader       = "Proposal %s"
	MsgProposedBy           = "Proposed by %s"
	MsgVersion              = "Version %d"
	MsgActiveForVoting      = "Voting is open for this proposal"
	MsgAvailableVotes       = "You have %d votes available (block %d)"
	MsgDescription          = "Description"
	MsgNoVotes              = "No votes"
	MsgDynamicQuorum        = "Dynamic quorum: min %s%%, max %s%% of %s Nouns"

	relSeconds = "a few seconds"
	relMinute  = "a minute"
	relMinutes = "%d minutes"
	relHour    = "an hour"
	relHours   = "%d hours"
	relDay     = "a day"
	relDays    = "%d days"
	relMonth   = "a month"
	relMonths  = "%d months"
	relYear    = "a year"
	relYears   = "%d years"
)

var translations = map[language.Tag]map[string]string{
	language.Japanese: {
		MsgStarts:               "開始",
		MsgEnds:                 "終了予定",
		MsgEnded:                "終了",
		MsgThreshold:            "しきい値",
		MsgCurrentThreshold:     "現在のしきい値",
		MsgVotesCount:           "%d 票",
		MsgSnapshot:             "スナップショット",
		MsgTakenAtBlock:         "取得ブロック",
		MsgProposerFunctions:    "提案者の機能",
		MsgEditableFor:          "この提案は今後%s編集できます",
		MsgCancelableFor:        "この提案は今後%sキャンセルできます",
		MsgOnlyVisibleToYou:     "あなたにのみ表示されます",
		MsgWithdrawFromStream:   "ストリーム %s から引き出す",
		MsgSwitchToNounView:     "Noun ビューに切り替え",
		MsgSwitchToDelegateView: "デリゲートビューに切り替え",
		MsgFailedToFetch:        "取得に失敗しました",
		MsgSuccess:              "成功",
		MsgTransactionSucceeded: "トランザクションが成功しました！",
		MsgTransactionFailed:    "トランザクションが失敗しました",
		MsgPleaseTryAgain:       "もう一度お試しください。",
		MsgError:                "エラー",
		MsgProposalQueued:       "提案がキューに入りました！",
		MsgProposalExecuted:     "提案が実行されました！",
		MsgProposalCanceled:     "提案がキャンセルされました！",
		MsgVoteSubmitted:        "投票が送信されました！",
		MsgWithdrawalSubmitted:  "引き出しが送信されました！",
		MsgFor:                  "賛成",
		MsgAgainst:              "反対",
		MsgAbstain:              "棄権",
		MsgProposalHeader:       "提案 %s",
		MsgProposedBy:           "提案者 %s",
		MsgVersion:              "バージョン %d",
		MsgActiveForVoting:      "この提案は投票受付中です",
		MsgAvailableVotes:       "利用可能な票: %d (ブロック %d)",
		MsgDescription:          "説明",
		MsgNoVotes:              "投票なし",
		MsgDynamicQuorum:        "動的クオーラム: 最小 %s%%、最大 %s%% (%s Nouns)",
		relSeconds:              "数秒",
		relMinute:               "1分",
		relMinutes:              "%d分",
		relHour:                 "1時間",
		relHours:                "%d時間",
		relDay:                  "1日",
		relDays:                 "%d日",
		relMonth:                "1ヶ月",
		relMonths:               "%dヶ月",
		relYear:                 "1年",
		relYears:                "%d年",
	},
	language.SimplifiedChinese: {
		MsgStarts:               "开始",
		MsgEnds:                 "结束于",
		MsgEnded:                "已结束",
		MsgThreshold:            "门槛",
		MsgCurrentThreshold:     "当前门槛",
		MsgVotesCount:           "%d 票",
		MsgSnapshot:             "快照",
		MsgTakenAtBlock:         "快照区块",
		MsgProposerFunctions:    "提案人功能",
		MsgEditableFor:          "此提案在接下来的%s内可以编辑",
		MsgCancelableFor:        "此提案在接下来的%s内可以取消",
		MsgOnlyVisibleToYou:     "仅你可见",
		MsgWithdrawFromStream:   "从流 %s 提取",
		MsgSwitchToNounView:     "切换到 Noun 视图",
		MsgSwitchToDelegateView: "切换到代表视图",
		MsgFailedToFetch:        "获取失败",
		MsgSuccess:              "成功",
		MsgTransactionSucceeded: "交易成功！",
		MsgTransactionFailed:    "交易失败",
		MsgPleaseTryAgain:       "请重试。",
		MsgError:                "错误",
		MsgProposalQueued:       "提案已排队！",
		MsgProposalExecuted:     "提案已执行！",
		MsgProposalCanceled:     "提案已取消！",
		MsgVoteSubmitted:        "投票已提交！",
		MsgWithdrawalSubmitted:  "提取已提交！",
		MsgFor:                  "赞成",
		MsgAgainst:              "反对",
		MsgAbstain:              "弃权",
		MsgProposalHeader:       "提案 %s",
		MsgProposedBy:           "提案人 %s",
		MsgVersion:              "版本 %d",
		MsgActiveForVoting:      "此提案正在投票中",
		MsgAvailableVotes:       "可用票数: %d (区块 %d)",
		MsgDescription:          "描述",
		MsgNoVotes:              "暂无投票",
		MsgDynamicQuorum:        "动态法定人数: 最小 %s%%，最大 %s%% (%s Nouns)",
		relSeconds:              "几秒",
		relMinute:               "1 分钟",
		relMinutes:              "%d 分钟",
		relHour:                 "1 小时",
		relHours:                "%d 小时",
		relDay:                  "1 天",
		relDays:                 "%d 天",
		relMonth:                "1 个月",
		relMonths:               "%d 个月",
		relYear:                 "1 年",
		relYears:                "%d 年",
	},
}

// plurals holds the English copy that depends on a count. Other English
// keys need no entries: a missing key prints the key itself.
var plurals = map[string]catalog.Message{
	MsgVotesCount: plural.Selectf(1, "%d",
		"one", "%d vote",
		"other", "%d votes",
	),
	MsgAvailableVotes: plural.Selectf(1, "%d",
		"one", "You have %d vote available (block %d)",
		"other", "You have %d votes available (block %d)",
	),
}

// newCatalog builds the message catalog
func newCatalog() (catalog.Catalog, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.AmericanEnglish))
	for key, msg := range plurals {
		if err := b.Set(language.AmericanEnglish, key, msg); err != nil {
			return nil, err
		}
	}
	for tag, messages := range translations {
		for key, msg := range messages {
			if err := b.SetString(tag, key, msg); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}
